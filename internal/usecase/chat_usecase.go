package usecase

import (
	"context"
	"strings"

	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/hothat-pawa/go-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	// WelcomeMessage — первое сообщение, которым засеивается каждая новая переписка.
	WelcomeMessage = "স্বাগতম! আমি আপনার 'হঠাৎ পাওয়া' এআই অ্যাসিস্ট্যান্ট। আপনি কি কোনো নির্দিষ্ট পণ্য খুঁজছেন? আপনি চাইলে ছবি তুলেও আমাকে পাঠাতে পারেন!"

	// FallbackReply — фиксированный ответ ассистента при любой ошибке советника.
	FallbackReply = "আমার সিস্টেমে কিছুটা সমস্যা হচ্ছে। দয়া করে কিছুক্ষণ পর আবার চেষ্টা করুন!"
)

// ChatUseCase ведёт переписку с ассистентом. Переписка привязана к сессии,
// только дописывается и хранится в Redis. На каждый ход действует машина
// состояний idle/awaiting-response: пока ответ не получен, повторная отправка
// отклоняется. Ошибка советника не фатальна — в переписку попадает
// фиксированный запасной ответ, и сессия возвращается в idle.
type ChatUseCase struct {
	chatRepo      ChatRepository
	catalog       CatalogUC
	advisor       AdvisorInfra
	logger        logger.Logger
	historyWindow int
}

func NewChatUC(chatRepo ChatRepository, catalog CatalogUC, advisor AdvisorInfra,
	logger logger.Logger, historyWindow int) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:      chatRepo,
		catalog:       catalog,
		advisor:       advisor,
		logger:        logger,
		historyWindow: historyWindow,
	}
}

// Submit обрабатывает один ход переписки: оптимистично дописывает сообщение
// пользователя, собирает ограниченный контекст и спрашивает советника.
func (c *ChatUseCase) Submit(ctx context.Context, sessionID string, text string, image *domain.InlineImage) (*ChatMessageInfo, error) {
	const op = "ChatUseCase.Submit"

	if strings.TrimSpace(text) == "" && image == nil {
		return nil, e.Wrap(op, e.ErrEmptyMessage)
	}

	locked, err := c.chatRepo.TryLock(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !locked {
		return nil, e.Wrap(op, e.ErrChatBusy)
	}
	defer func() {
		if err := c.chatRepo.Unlock(context.WithoutCancel(ctx), sessionID); err != nil {
			c.logger.Warnf("failed to release chat turn lock: %v", e.Wrap(op, err))
		}
	}()

	transcript, err := c.transcript(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// История для советника собирается до нового сообщения и сводится к
	// роли и тексту: изображения прошлых ходов повторно не отправляются.
	history := boundedHistory(transcript, c.historyWindow)

	transcript = append(transcript, *domain.NewUserMessage(text, image))
	if err := c.chatRepo.SaveTranscript(ctx, sessionID, transcript); err != nil {
		return nil, e.Wrap(op, err)
	}

	reply := c.advise(ctx, text, history, image)

	transcript = append(transcript, *reply)
	if err := c.chatRepo.SaveTranscript(ctx, sessionID, transcript); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewChatMessageInfo(reply), nil
}

// History возвращает полную переписку сессии.
func (c *ChatUseCase) History(ctx context.Context, sessionID string) ([]ChatMessageInfo, error) {
	const op = "ChatUseCase.History"

	transcript, err := c.transcript(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]ChatMessageInfo, 0, len(transcript))
	for i := range transcript {
		result = append(result, *NewChatMessageInfo(&transcript[i]))
	}

	return result, nil
}

// advise спрашивает советника; любая его ошибка заменяется запасным ответом.
func (c *ChatUseCase) advise(ctx context.Context, text string, history []ChatTurn, image *domain.InlineImage) *domain.ChatMessage {
	const op = "ChatUseCase.advise"

	res, err := c.advisor.Advise(ctx, NewAdviseReq(text, history, c.catalogSnapshot(), image))
	if err != nil {
		c.logger.Warnf("advisor call failed, substituting fallback reply: %v", e.Wrap(op, err))
		return domain.NewModelMessage(FallbackReply, nil)
	}

	return domain.NewModelMessage(res.Text, res.Sources)
}

// transcript читает переписку сессии, засеивая приветствие при первом обращении.
func (c *ChatUseCase) transcript(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	transcript, err := c.chatRepo.GetTranscript(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(transcript) == 0 {
		transcript = []domain.ChatMessage{*domain.NewModelMessage(WelcomeMessage, nil)}
		if err := c.chatRepo.SaveTranscript(ctx, sessionID, transcript); err != nil {
			return nil, err
		}
	}

	return transcript, nil
}

// catalogSnapshot проецирует каталог в снимок для советника: имя, цена в
// таках, описание и теги. Изображения не передаются, чтобы ограничить
// размер запроса.
func (c *ChatUseCase) catalogSnapshot() []ProductSnapshot {
	products := c.catalog.Snapshot()

	snapshot := make([]ProductSnapshot, 0, len(products))
	for i := range products {
		snapshot = append(snapshot, ProductSnapshot{
			Name:        products[i].Name,
			Price:       decimal.New(products[i].Price, -2).String(),
			Description: products[i].Description,
			Tags:        products[i].Tags,
		})
	}

	return snapshot
}

// boundedHistory возвращает последние window сообщений, сведённые к роли и тексту.
func boundedHistory(transcript []domain.ChatMessage, window int) []ChatTurn {
	start := len(transcript) - window
	if start < 0 {
		start = 0
	}

	history := make([]ChatTurn, 0, len(transcript)-start)
	for _, msg := range transcript[start:] {
		history = append(history, ChatTurn{Role: msg.Role, Text: msg.Content})
	}

	return history
}
