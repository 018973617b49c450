package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/hothat-pawa/go-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// Изображение по умолчанию для товаров, добавленных без файла и без URL.
const defaultProductImage = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=500"

// CatalogUseCase владеет авторитетным снимком каталога в памяти процесса.
// Снимок загружается из PostgreSQL на старте (либо из встроенного набора,
// если хранилище пусто или недоступно) и дописывается при каждом добавлении
// товара. Отказ записи в хранилище не считается фатальным: снимок в памяти
// остаётся источником истины до конца работы процесса.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	outboxRepo   OutboxRepository
	dbPool       transaction.Transactional
	imagesInfra  ImagesInfra
	logger       logger.Logger

	mu          sync.RWMutex
	products    []domain.Product // порядок: новые первыми
	nextLocalID int64
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		outboxRepo:   outboxRepo,
		dbPool:       dbPool,
		imagesInfra:  imagesInfra,
		logger:       logger,
		nextLocalID:  1,
	}
}

// Load заполняет снимок каталога из хранилища. Пустое хранилище засеивается
// встроенным набором товаров; ошибка чтения приводит к тихому откату на
// встроенный набор. Наружу ошибка не отдаётся никогда.
func (c *CatalogUseCase) Load(ctx context.Context) {
	const op = "CatalogUseCase.Load"

	products, err := c.productRepo.GetAll(ctx)
	if err != nil {
		c.logger.Warnf("failed to load catalog, falling back to defaults: %v", e.Wrap(op, err))
		c.replaceSnapshot(DefaultProducts())
		return
	}

	if len(products) == 0 {
		c.logger.Infof("catalog storage is empty, seeding default products")
		c.replaceSnapshot(c.seedDefaults(ctx))
		return
	}

	c.replaceSnapshot(products)
}

// AddProduct валидирует запрос, при необходимости загружает изображение в S3,
// сохраняет товар вместе с outbox-событием в одной транзакции и добавляет его
// в начало снимка. При отказе хранилища товар получает локальный идентификатор
// и остаётся только в памяти (Persisted=false).
func (c *CatalogUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*AddProductRes, error) {
	const op = "CatalogUseCase.AddProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	image := req.ImageURL
	var imageKey string
	if req.Image != nil {
		uploaded, err := c.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Name, *req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		image = uploaded.URL
		imageKey = uploaded.ObjectKey
	}
	if image == "" {
		image = defaultProductImage
	}

	tags := req.Tags
	if len(tags) == 0 {
		tags = []string{strings.ToLower(req.CategoryName), "new"}
	}

	product := domain.NewProduct(req.Name, req.Description, req.Price, 0, req.CategoryName, image, tags)

	persisted := true
	if err := c.persistProduct(ctx, product); err != nil {
		if ctx.Err() != nil {
			// Запрос оборван: товар не попадает в снимок, загруженное
			// изображение удаляется в фоне.
			c.imagesInfra.CleanupImage(imageKey)
			return nil, e.Wrap(op, err)
		}
		// Снимок в памяти остаётся авторитетным: пользователю уходит
		// предупреждение, а не ошибка.
		c.logger.Warnf("failed to persist product %q, keeping it in memory only: %v", req.Name, e.Wrap(op, err))
		persisted = false
	}

	c.mu.Lock()
	if !persisted {
		product.ID = c.nextLocalID
		product.CreatedAt = time.Now().UTC()
	}
	if product.ID >= c.nextLocalID {
		c.nextLocalID = product.ID + 1
	}
	c.products = append([]domain.Product{*product}, c.products...)
	c.mu.Unlock()

	return NewAddProductRes(product, persisted), nil
}

// ListProducts возвращает отфильтрованный снимок каталога.
func (c *CatalogUseCase) ListProducts(category string, query string) []ProductInfo {
	c.mu.RLock()
	filtered := FilterProducts(c.products, category, query)
	c.mu.RUnlock()

	result := make([]ProductInfo, 0, len(filtered))
	for i := range filtered {
		result = append(result, NewProductInfo(&filtered[i]))
	}

	return result
}

// Snapshot возвращает копию полного снимка каталога.
func (c *CatalogUseCase) Snapshot() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]domain.Product, len(c.products))
	copy(snapshot, c.products)

	return snapshot
}

// FindProduct ищет товар в снимке по идентификатору.
func (c *CatalogUseCase) FindProduct(id int64) (*domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, true
		}
	}

	return nil, false
}

// persistProduct сохраняет товар и outbox-событие в одной транзакции.
func (c *CatalogUseCase) persistProduct(ctx context.Context, product *domain.Product) error {
	const op = "CatalogUseCase.persistProduct"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	category, err := c.categoryRepo.GetByName(ctx, product.CategoryName)
	if err != nil {
		return e.Wrap(op, err)
	}
	product.CategoryID = category.ID

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		return e.Wrap(op, err)
	}

	payload, err := productCreatedPayload(created)
	if err != nil {
		return e.Wrap(op, err)
	}

	if _, err = c.outboxRepo.Create(ctx, NewOutboxEvent(ProductCreated, created.ID, payload)); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	*product = *created
	return nil
}

// seedDefaults записывает встроенный набор в хранилище. Если запись не
// удалась, набор используется как есть, с встроенными идентификаторами.
func (c *CatalogUseCase) seedDefaults(ctx context.Context) []domain.Product {
	const op = "CatalogUseCase.seedDefaults"

	defaults := DefaultProducts()
	seeded := make([]domain.Product, 0, len(defaults))
	for i := range defaults {
		product := defaults[i]
		product.ID = 0
		if err := c.persistProduct(ctx, &product); err != nil {
			c.logger.Warnf("failed to seed default catalog, serving it from memory: %v", e.Wrap(op, err))
			return defaults
		}
		seeded = append(seeded, product)
	}

	return seeded
}

func (c *CatalogUseCase) replaceSnapshot(products []domain.Product) {
	var maxID int64
	for i := range products {
		if products[i].ID > maxID {
			maxID = products[i].ID
		}
	}

	c.mu.Lock()
	c.products = products
	c.nextLocalID = maxID + 1
	c.mu.Unlock()
}

// validateProduct проверяет корректность входных данных запроса на добавление товара.
func (c *CatalogUseCase) validateProduct(req *AddProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(req.Description) == "" {
		return e.ErrMissingFields
	}

	if !domain.IsValidCategory(req.CategoryName) {
		return e.ErrUnknownCategory
	}

	if req.Price < 0 {
		return e.ErrPriceNegative
	}

	return nil
}

// productCreatedPayload сериализует товар в полезную нагрузку outbox-события.
func productCreatedPayload(p *domain.Product) ([]byte, error) {
	return json.Marshal(struct {
		ID           int64    `json:"id"`
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Price        int64    `json:"price"`
		CategoryName string   `json:"category_name"`
		Image        string   `json:"image"`
		Tags         []string `json:"tags"`
	}{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CategoryName: p.CategoryName,
		Image:        p.Image,
		Tags:         p.Tags,
	})
}
