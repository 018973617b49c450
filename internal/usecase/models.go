package usecase

import (
	"time"

	"github.com/hothat-pawa/go-backend/internal/domain"
)

// CATALOG USECASE

// AddProductReq — запрос на добавление нового товара.
type AddProductReq struct {
	Name         string
	Description  string
	CategoryName string
	Price        int64 // в пойшах
	Tags         []string
	ImageURL     string        // внешний URL, если файл не загружался
	Image        *ProductImage // файл из multipart/form-data, опционально
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// AddProductRes — ответ на добавление товара. Persisted=false означает, что
// запись не попала в долговременное хранилище и живёт только в памяти процесса.
type AddProductRes struct {
	Product   ProductInfo
	Persisted bool
}

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID           int64
	Name         string
	Description  string
	Price        int64
	CategoryName string
	Image        string
	Rating       float64
	ReviewsCount int
	Tags         []string
}

// CART USECASE

// CartEntryInfo — DTO одной позиции корзины.
type CartEntryInfo struct {
	ProductID int64
	Name      string
	Price     int64
	Image     string
	Quantity  int
}

// CartView — представление корзины с производными величинами.
type CartView struct {
	Items      []CartEntryInfo
	Subtotal   int64
	TotalItems int
}

// CHAT USECASE

// ChatMessageInfo — DTO сообщения переписки.
type ChatMessageInfo struct {
	Role      string
	Content   string
	Timestamp time.Time
	Sources   []SourceInfo
}

type SourceInfo struct {
	URI   string
	Title string
}

// INFRASTRUCTURE

// AdviseReq — ограниченный контекст одного хода, передаваемый внешнему советнику:
// текст запроса, последние ходы переписки (только роль и текст), снимок каталога
// и опциональное изображение.
type AdviseReq struct {
	Prompt   string
	History  []ChatTurn
	Products []ProductSnapshot
	Image    *domain.InlineImage
}

// ChatTurn — прошлый ход переписки, сведённый к роли и тексту.
type ChatTurn struct {
	Role string
	Text string
}

// ProductSnapshot — товар в снимке каталога для советника.
// Изображения намеренно не передаются, чтобы ограничить размер запроса.
type ProductSnapshot struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// AdviseRes — ответ советника.
type AdviseRes struct {
	Text    string
	Sources []domain.Source
}

// UploadImageReq — запрос на загрузку изображения товара.
type UploadImageReq struct {
	ProductName string
	Image       ProductImage
}

// UploadImageRes — результат загрузки: публичный URL и ключ объекта.
// Ключ нужен для компенсирующего удаления, если товар так и не был добавлен.
type UploadImageRes struct {
	URL       string
	ObjectKey string
}

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// MAPPERS

func NewProductInfo(p *domain.Product) ProductInfo {
	return ProductInfo{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CategoryName: p.CategoryName,
		Image:        p.Image,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
		Tags:         p.Tags,
	}
}

func NewAddProductRes(p *domain.Product, persisted bool) *AddProductRes {
	return &AddProductRes{
		Product:   NewProductInfo(p),
		Persisted: persisted,
	}
}

func NewCartView(entries []domain.CartEntry) *CartView {
	items := make([]CartEntryInfo, 0, len(entries))
	totalItems := 0
	for _, entry := range entries {
		items = append(items, CartEntryInfo{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			Price:     entry.Price,
			Image:     entry.Image,
			Quantity:  entry.Quantity,
		})
		totalItems += entry.Quantity
	}

	return &CartView{
		Items:      items,
		Subtotal:   domain.Subtotal(entries),
		TotalItems: totalItems,
	}
}

func NewChatMessageInfo(m *domain.ChatMessage) *ChatMessageInfo {
	sources := make([]SourceInfo, 0, len(m.Sources))
	for _, s := range m.Sources {
		sources = append(sources, SourceInfo{URI: s.URI, Title: s.Title})
	}

	return &ChatMessageInfo{
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Sources:   sources,
	}
}

func NewAdviseReq(prompt string, history []ChatTurn, products []ProductSnapshot, image *domain.InlineImage) *AdviseReq {
	return &AdviseReq{
		Prompt:   prompt,
		History:  history,
		Products: products,
		Image:    image,
	}
}

func NewAdviseRes(text string, sources []domain.Source) *AdviseRes {
	return &AdviseRes{
		Text:    text,
		Sources: sources,
	}
}

func NewUploadImageReq(productName string, image ProductImage) *UploadImageReq {
	return &UploadImageReq{
		ProductName: productName,
		Image:       image,
	}
}

func NewUploadImageRes(url string, objectKey string) *UploadImageRes {
	return &UploadImageRes{
		URL:       url,
		ObjectKey: objectKey,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}
