package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hothat-pawa/go-backend/internal/cfg"
	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/hothat-pawa/go-backend/internal/repository/redis/converter"
	"github.com/hothat-pawa/go-backend/pkg/clients"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CartRepo хранит корзину сессии одним JSON-документом в Redis.
// TTL обновляется при каждой записи; истёкшая корзина равнозначна пустой.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter, cfg *cfg.RedisCfg) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
	}
}

// Get возвращает позиции корзины сессии. Отсутствующий ключ — пустая корзина.
func (c *CartRepo) Get(ctx context.Context, sessionID string) ([]domain.CartEntry, error) {
	data, err := c.client.Client.Get(ctx, c.cartKey(sessionID)).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.CartEntryRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}

// Save перезаписывает корзину сессии целиком. Пустая корзина удаляет ключ.
func (c *CartRepo) Save(ctx context.Context, sessionID string, entries []domain.CartEntry) error {
	key := c.cartKey(sessionID)

	if len(entries) == 0 {
		if err := c.client.Client.Del(ctx, key).Err(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	}

	data, err := json.Marshal(c.conv.ToArrRedisModel(entries))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, key, data, c.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// cartKey возвращает Redis-ключ корзины сессии.
func (c *CartRepo) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
