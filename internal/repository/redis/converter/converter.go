package converter

import "github.com/hothat-pawa/go-backend/internal/domain"

// CartConverter преобразует позиции корзины между domain и Redis-моделью.
type CartConverter interface {
	ToArrRedisModel(entries []domain.CartEntry) []CartEntryRedisModel
	ToArrEntity(models []CartEntryRedisModel) []domain.CartEntry
}

// ChatConverter преобразует сообщения переписки между domain и Redis-моделью.
type ChatConverter interface {
	ToArrRedisModel(messages []domain.ChatMessage) []ChatMessageRedisModel
	ToArrEntity(models []ChatMessageRedisModel) []domain.ChatMessage
}

type CartConverterImpl struct{}

func NewCartConverterImpl() *CartConverterImpl {
	return &CartConverterImpl{}
}

func (c *CartConverterImpl) ToArrRedisModel(entries []domain.CartEntry) []CartEntryRedisModel {
	models := make([]CartEntryRedisModel, 0, len(entries))
	for _, entry := range entries {
		models = append(models, CartEntryRedisModel{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			Price:     entry.Price,
			Image:     entry.Image,
			Quantity:  entry.Quantity,
		})
	}

	return models
}

func (c *CartConverterImpl) ToArrEntity(models []CartEntryRedisModel) []domain.CartEntry {
	entries := make([]domain.CartEntry, 0, len(models))
	for _, model := range models {
		entries = append(entries, domain.CartEntry{
			ProductID: model.ProductID,
			Name:      model.Name,
			Price:     model.Price,
			Image:     model.Image,
			Quantity:  model.Quantity,
		})
	}

	return entries
}

type ChatConverterImpl struct{}

func NewChatConverterImpl() *ChatConverterImpl {
	return &ChatConverterImpl{}
}

func (c *ChatConverterImpl) ToArrRedisModel(messages []domain.ChatMessage) []ChatMessageRedisModel {
	models := make([]ChatMessageRedisModel, 0, len(messages))
	for _, msg := range messages {
		model := ChatMessageRedisModel{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		}
		for _, s := range msg.Sources {
			model.Sources = append(model.Sources, SourceRedisModel{URI: s.URI, Title: s.Title})
		}
		models = append(models, model)
	}

	return models
}

func (c *ChatConverterImpl) ToArrEntity(models []ChatMessageRedisModel) []domain.ChatMessage {
	messages := make([]domain.ChatMessage, 0, len(models))
	for _, model := range models {
		msg := domain.ChatMessage{
			Role:      model.Role,
			Content:   model.Content,
			Timestamp: model.Timestamp,
		}
		for _, s := range model.Sources {
			msg.Sources = append(msg.Sources, domain.Source{URI: s.URI, Title: s.Title})
		}
		messages = append(messages, msg)
	}

	return messages
}
