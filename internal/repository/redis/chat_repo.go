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

// ChatRepo хранит переписку сессии одним JSON-документом в Redis и
// удерживает флаг занятости хода через SETNX. TTL флага ограничивает время,
// на которое зависший ход может заблокировать сессию.
type ChatRepo struct {
	client *clients.RedisClient
	conv   converter.ChatConverter
	cfg    *cfg.RedisCfg
}

func NewChatRepo(client *clients.RedisClient, conv converter.ChatConverter, cfg *cfg.RedisCfg) *ChatRepo {
	return &ChatRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
	}
}

// GetTranscript возвращает переписку сессии. Отсутствующий ключ — nil.
func (c *ChatRepo) GetTranscript(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	data, err := c.client.Client.Get(ctx, c.transcriptKey(sessionID)).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ChatMessageRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}

// SaveTranscript перезаписывает переписку сессии целиком.
func (c *ChatRepo) SaveTranscript(ctx context.Context, sessionID string, messages []domain.ChatMessage) error {
	data, err := json.Marshal(c.conv.ToArrRedisModel(messages))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.transcriptKey(sessionID), data, c.cfg.ChatTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// TryLock пытается занять ход сессии. false означает, что ход уже идёт.
func (c *ChatRepo) TryLock(ctx context.Context, sessionID string) (bool, error) {
	locked, err := c.client.Client.SetNX(ctx, c.busyKey(sessionID), "1", c.cfg.ChatBusyTTL).Result()
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return locked, nil
}

// Unlock освобождает ход сессии.
func (c *ChatRepo) Unlock(ctx context.Context, sessionID string) error {
	if err := c.client.Client.Del(ctx, c.busyKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *ChatRepo) transcriptKey(sessionID string) string {
	return fmt.Sprintf("chat:history:%s", sessionID)
}

func (c *ChatRepo) busyKey(sessionID string) string {
	return fmt.Sprintf("chat:busy:%s", sessionID)
}
