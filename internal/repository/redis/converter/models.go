package converter

import "time"

// CartEntryRedisModel — позиция корзины в Redis-документе сессии.
type CartEntryRedisModel struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// ChatMessageRedisModel — сообщение переписки в Redis-документе сессии.
// Изображения в историю не попадают.
type ChatMessageRedisModel struct {
	Role      string             `json:"role"`
	Content   string             `json:"content"`
	Timestamp time.Time          `json:"timestamp"`
	Sources   []SourceRedisModel `json:"sources,omitempty"`
}

type SourceRedisModel struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}
