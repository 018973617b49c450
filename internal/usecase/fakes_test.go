package usecase

import (
	"context"
	"errors"

	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

var errStorageDown = errors.New("storage down")

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// brokenPool имитирует недоступный PostgreSQL: транзакция не открывается.
type brokenPool struct{}

func (brokenPool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return nil, errStorageDown
}

type fakeProductRepo struct {
	products []domain.Product
	getErr   error
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.products, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return nil, errStorageDown
}

type fakeCategoryRepo struct{}

func (f *fakeCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	return nil, errStorageDown
}

type fakeOutboxRepo struct{}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	return nil, errStorageDown
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

type fakeImagesInfra struct {
	url       string
	uploadErr error
	uploads   int
	cleanups  []string
}

func (f *fakeImagesInfra) UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	f.uploads++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return NewUploadImageRes(f.url, "products/"+req.Image.Name), nil
}

func (f *fakeImagesInfra) CleanupImage(key string) {
	f.cleanups = append(f.cleanups, key)
}

func (f *fakeImagesInfra) WaitForCleanup(ctx context.Context) error { return nil }

type fakeCartRepo struct {
	carts   map[string][]domain.CartEntry
	getErr  error
	saveErr error
	saves   int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string][]domain.CartEntry)}
}

func (f *fakeCartRepo) Get(ctx context.Context, sessionID string) ([]domain.CartEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.carts[sessionID], nil
}

func (f *fakeCartRepo) Save(ctx context.Context, sessionID string, entries []domain.CartEntry) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.carts[sessionID] = entries
	return nil
}

type fakeChatRepo struct {
	transcripts map[string][]domain.ChatMessage
	locks       map[string]bool
	lockErr     error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		transcripts: make(map[string][]domain.ChatMessage),
		locks:       make(map[string]bool),
	}
}

func (f *fakeChatRepo) GetTranscript(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	return f.transcripts[sessionID], nil
}

func (f *fakeChatRepo) SaveTranscript(ctx context.Context, sessionID string, messages []domain.ChatMessage) error {
	f.transcripts[sessionID] = messages
	return nil
}

func (f *fakeChatRepo) TryLock(ctx context.Context, sessionID string) (bool, error) {
	if f.lockErr != nil {
		return false, f.lockErr
	}
	if f.locks[sessionID] {
		return false, nil
	}
	f.locks[sessionID] = true
	return true, nil
}

func (f *fakeChatRepo) Unlock(ctx context.Context, sessionID string) error {
	delete(f.locks, sessionID)
	return nil
}

type fakeAdvisor struct {
	reply   string
	sources []domain.Source
	err     error
	lastReq *AdviseReq
	calls   int
}

func (f *fakeAdvisor) Advise(ctx context.Context, req *AdviseReq) (*AdviseRes, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return NewAdviseRes(f.reply, f.sources), nil
}

// memoryCatalog — каталог для тестов корзины и чата, без хранилища.
type memoryCatalog struct {
	products []domain.Product
}

func (m *memoryCatalog) Load(ctx context.Context) {}

func (m *memoryCatalog) AddProduct(ctx context.Context, req *AddProductReq) (*AddProductRes, error) {
	return nil, errStorageDown
}

func (m *memoryCatalog) ListProducts(category string, query string) []ProductInfo {
	filtered := FilterProducts(m.products, category, query)
	result := make([]ProductInfo, 0, len(filtered))
	for i := range filtered {
		result = append(result, NewProductInfo(&filtered[i]))
	}
	return result
}

func (m *memoryCatalog) Snapshot() []domain.Product {
	return m.products
}

func (m *memoryCatalog) FindProduct(id int64) (*domain.Product, bool) {
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, true
		}
	}
	return nil, false
}
