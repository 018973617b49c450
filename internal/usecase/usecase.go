package usecase

import (
	"context"

	"github.com/hothat-pawa/go-backend/internal/domain"
)

type CatalogUC interface {
	Load(ctx context.Context)
	AddProduct(ctx context.Context, req *AddProductReq) (*AddProductRes, error)
	ListProducts(category string, query string) []ProductInfo
	Snapshot() []domain.Product
	FindProduct(id int64) (*domain.Product, bool)
}

type CartUC interface {
	AddItem(ctx context.Context, sessionID string, productID int64) (*CartView, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, delta int) (*CartView, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartView, error)
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
}

type ChatUC interface {
	Submit(ctx context.Context, sessionID string, text string, image *domain.InlineImage) (*ChatMessageInfo, error)
	History(ctx context.Context, sessionID string) ([]ChatMessageInfo, error)
}
