package domain

import "time"

// Названия категорий образуют закрытое множество. CategoryAll — только
// значение фильтра, товару оно никогда не присваивается.
const (
	CategoryAll         = "All"
	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryHome        = "Home & Living"
	CategoryOutdoor     = "Outdoor"
)

// CategoryNames перечисляет допустимые категории товара в фиксированном порядке.
var CategoryNames = []string{
	CategoryElectronics,
	CategoryFashion,
	CategoryHome,
	CategoryOutdoor,
}

// IsValidCategory сообщает, входит ли имя в закрытое множество категорий товара.
func IsValidCategory(name string) bool {
	for _, c := range CategoryNames {
		if c == name {
			return true
		}
	}

	return false
}

// Category описывает категорию товара
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsActive  bool
}

func NewCategory(name string) *Category {
	return &Category{
		Name: name,
	}
}
