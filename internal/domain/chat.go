package domain

import "time"

// Роли сообщений в переписке с ассистентом.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Source — ссылка на внешний источник, которым ассистент подкрепил ответ.
type Source struct {
	URI   string
	Title string
}

// InlineImage — изображение, приложенное к сообщению в рамках одного хода.
// В истории переписки изображения не сохраняются: при сборке контекста
// прошлые ходы сводятся к роли и тексту.
type InlineImage struct {
	Data     []byte
	MimeType string
}

// ChatMessage — одно сообщение переписки.
type ChatMessage struct {
	Role      string
	Content   string
	Timestamp time.Time
	Image     *InlineImage
	Sources   []Source
}

func NewUserMessage(content string, image *InlineImage) *ChatMessage {
	return &ChatMessage{
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Image:     image,
	}
}

func NewModelMessage(content string, sources []Source) *ChatMessage {
	return &ChatMessage{
		Role:      RoleModel,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Sources:   sources,
	}
}
