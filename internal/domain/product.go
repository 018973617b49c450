package domain

import "time"

// Product описывает товар витрины.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        int64 // Цена хранится в пойшах (1 така = 100 пойш)
	CategoryID   int64
	CategoryName string
	Image        string // URL либо ключ объекта в MinIO
	Rating       float64
	ReviewsCount int
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	IsArchived   bool
}

func NewProduct(name string, description string, price int64, categoryID int64, categoryName string,
	image string, tags []string) *Product {
	const defaultRating = 5.0

	return &Product{
		Name:         name,
		Description:  description,
		Price:        price,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Image:        image,
		Rating:       defaultRating,
		ReviewsCount: 0,
		Tags:         tags,
	}
}
