package usecase

import (
	"context"

	"github.com/hothat-pawa/go-backend/internal/domain"
)

type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

type CategoryRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Category, error)
}

type CartRepository interface {
	Get(ctx context.Context, sessionID string) ([]domain.CartEntry, error)
	Save(ctx context.Context, sessionID string, entries []domain.CartEntry) error
}

type ChatRepository interface {
	GetTranscript(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
	SaveTranscript(ctx context.Context, sessionID string, messages []domain.ChatMessage) error
	TryLock(ctx context.Context, sessionID string) (bool, error)
	Unlock(ctx context.Context, sessionID string) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}
