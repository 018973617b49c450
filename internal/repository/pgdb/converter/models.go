package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
// CategoryName приходит из JOIN с categories и в самой таблице не хранится.
type ProductModel struct {
	ID           int64      `db:"id"`
	Name         string     `db:"name"`
	Description  string     `db:"description"`
	Price        int64      `db:"price"`
	CategoryID   int64      `db:"category_id"`
	CategoryName string     `db:"category_name"`
	Image        string     `db:"image"`
	Rating       float64    `db:"rating"`
	ReviewsCount int        `db:"reviews_count"`
	Tags         []string   `db:"tags"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
	IsArchived   bool       `db:"is_archived"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	IsActive  bool       `db:"is_active"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
