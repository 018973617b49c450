package http

import (
	"time"

	"github.com/hothat-pawa/go-backend/internal/usecase"
)

// ProductResponse — товар в ответах API. Цена дублируется: в пойшах для
// точной арифметики и строкой в таках для отображения.
type ProductResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PricePoysha  int64    `json:"price_poysha"`
	Price        string   `json:"price"`
	Category     string   `json:"category"`
	Image        string   `json:"image"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviews_count"`
	Tags         []string `json:"tags"`
}

type AddProductResponse struct {
	Product   ProductResponse `json:"product"`
	Persisted bool            `json:"persisted"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type CartItemResponse struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	PricePoysha int64  `json:"price_poysha"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}

type CartResponse struct {
	Items          []CartItemResponse `json:"items"`
	SubtotalPoysha int64              `json:"subtotal_poysha"`
	Subtotal       string             `json:"subtotal"`
	TotalItems     int                `json:"total_items"`
}

type SourceResponse struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type ChatMessageResponse struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Sources   []SourceResponse `json:"sources,omitempty"`
}

type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

type ContactResponse struct {
	WhatsAppNumber string `json:"whatsapp_number"`
	WhatsAppLink   string `json:"whatsapp_link"`
}

func NewProductResponse(p usecase.ProductInfo) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		PricePoysha:  p.Price,
		Price:        formatPoysha(p.Price),
		Category:     p.CategoryName,
		Image:        p.Image,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
		Tags:         p.Tags,
	}
}

func NewProductListResponse(products []usecase.ProductInfo) *ProductListResponse {
	res := &ProductListResponse{
		Products: make([]ProductResponse, 0, len(products)),
		Total:    len(products),
	}
	for _, p := range products {
		res.Products = append(res.Products, NewProductResponse(p))
	}

	return res
}

func NewCartResponse(view *usecase.CartView) *CartResponse {
	res := &CartResponse{
		Items:          make([]CartItemResponse, 0, len(view.Items)),
		SubtotalPoysha: view.Subtotal,
		Subtotal:       formatPoysha(view.Subtotal),
		TotalItems:     view.TotalItems,
	}
	for _, item := range view.Items {
		res.Items = append(res.Items, CartItemResponse{
			ProductID:   item.ProductID,
			Name:        item.Name,
			PricePoysha: item.Price,
			Price:       formatPoysha(item.Price),
			Image:       item.Image,
			Quantity:    item.Quantity,
		})
	}

	return res
}

func NewChatMessageResponse(m *usecase.ChatMessageInfo) ChatMessageResponse {
	res := ChatMessageResponse{
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
	for _, s := range m.Sources {
		res.Sources = append(res.Sources, SourceResponse{URI: s.URI, Title: s.Title})
	}

	return res
}

func NewChatHistoryResponse(messages []usecase.ChatMessageInfo) *ChatHistoryResponse {
	res := &ChatHistoryResponse{
		Messages: make([]ChatMessageResponse, 0, len(messages)),
	}
	for i := range messages {
		res.Messages = append(res.Messages, NewChatMessageResponse(&messages[i]))
	}

	return res
}
