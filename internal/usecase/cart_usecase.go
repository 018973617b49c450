package usecase

import (
	"context"

	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/hothat-pawa/go-backend/pkg/logger"
)

// CartUseCase реализует корзину покупателя. Корзина привязана к сессии,
// хранится одним документом в Redis и начинается пустой. Инварианты:
// не больше одной позиции на товар, количество не меньше 1, порядок позиций —
// порядок первого добавления.
type CartUseCase struct {
	cartRepo CartRepository
	catalog  CatalogUC
	logger   logger.Logger
}

func NewCartUC(cartRepo CartRepository, catalog CatalogUC, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
		catalog:  catalog,
		logger:   logger,
	}
}

// AddItem увеличивает количество существующей позиции на 1 либо добавляет
// новую позицию с количеством 1 в конец корзины.
func (c *CartUseCase) AddItem(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	const op = "CartUseCase.AddItem"

	entries, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	found := false
	for i := range entries {
		if entries[i].ProductID == productID {
			entries[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		product, ok := c.catalog.FindProduct(productID)
		if !ok {
			return nil, e.Wrap(op, e.ErrProductNotFound)
		}
		entries = append(entries, *domain.NewCartEntry(product))
	}

	if err := c.cartRepo.Save(ctx, sessionID, entries); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(entries), nil
}

// UpdateQuantity прибавляет delta к количеству позиции, ограничивая результат
// снизу единицей. Отсутствующий идентификатор — no-op.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, sessionID string, productID int64, delta int) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	entries, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	changed := false
	for i := range entries {
		if entries[i].ProductID == productID {
			quantity := entries[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			entries[i].Quantity = quantity
			changed = true
			break
		}
	}

	if changed {
		if err := c.cartRepo.Save(ctx, sessionID, entries); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	return NewCartView(entries), nil
}

// RemoveItem удаляет позицию целиком независимо от количества.
func (c *CartUseCase) RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	const op = "CartUseCase.RemoveItem"

	entries, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := make([]domain.CartEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ProductID != productID {
			filtered = append(filtered, entry)
		}
	}

	if len(filtered) != len(entries) {
		if err := c.cartRepo.Save(ctx, sessionID, filtered); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	return NewCartView(filtered), nil
}

// GetCart возвращает корзину сессии с пересчитанной суммой.
func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	const op = "CartUseCase.GetCart"

	entries, err := c.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(entries), nil
}
