package usecase

import (
	"strings"

	"github.com/hothat-pawa/go-backend/internal/domain"
)

// FilterProducts — чистая функция фильтрации каталога: возвращает упорядоченную
// подпоследовательность товаров, у которых категория совпадает с активной
// (или активна категория-джокер "All") и имя либо описание содержит строку
// поиска без учёта регистра. Строка поиска сравнивается как есть, включая
// пробелы. Исходный порядок товаров сохраняется.
func FilterProducts(products []domain.Product, category string, query string) []domain.Product {
	q := strings.ToLower(query)

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(&p, category) {
			continue
		}

		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}

		result = append(result, p)
	}

	return result
}

func matchesCategory(p *domain.Product, category string) bool {
	if category == "" || category == domain.CategoryAll {
		return true
	}

	return p.CategoryName == category
}
