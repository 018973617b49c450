package usecase

import (
	"testing"

	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterProductsWildcardCategory(t *testing.T) {
	products := DefaultProducts()

	assert.Len(t, FilterProducts(products, "", ""), len(products))
	assert.Len(t, FilterProducts(products, domain.CategoryAll, ""), len(products))
}

func TestFilterProductsByCategory(t *testing.T) {
	products := DefaultProducts()

	electronics := FilterProducts(products, domain.CategoryElectronics, "")
	require.Len(t, electronics, 3)
	for _, p := range electronics {
		assert.Equal(t, domain.CategoryElectronics, p.CategoryName)
	}

	home := FilterProducts(products, domain.CategoryHome, "")
	assert.Len(t, home, 3)
}

func TestFilterProductsQueryCaseInsensitive(t *testing.T) {
	products := DefaultProducts()

	byName := FilterProducts(products, "", "nEoWaVe")
	require.Len(t, byName, 1)
	assert.Equal(t, "NeoWave Noise Cancelling Headphones", byName[0].Name)

	// поиск работает и по описанию
	byDescription := FilterProducts(products, "", "RGB")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Quantum Mechanical Keyboard", byDescription[0].Name)
}

func TestFilterProductsCategoryAndQueryCombined(t *testing.T) {
	products := DefaultProducts()

	result := FilterProducts(products, domain.CategoryElectronics, "watch")
	require.Len(t, result, 1)
	assert.Equal(t, "Lumina Smart Watch Series 5", result[0].Name)

	// та же подстрока в чужой категории не даёт совпадений
	assert.Empty(t, FilterProducts(products, domain.CategoryFashion, "watch"))
}

func TestFilterProductsPreservesOrder(t *testing.T) {
	products := DefaultProducts()

	home := FilterProducts(products, domain.CategoryHome, "")
	require.Len(t, home, 3)
	assert.Equal(t, "Ceramic Artisan Coffee Set", home[0].Name)
	assert.Equal(t, "Bamboo Eco-Friendly Table Lamp", home[1].Name)
	assert.Equal(t, "Zen Floating Shelf Decor", home[2].Name)
}

func TestFilterProductsNoMatch(t *testing.T) {
	result := FilterProducts(DefaultProducts(), "", "nonexistent gadget")
	assert.Empty(t, result)
}

func TestFilterProductsQueryWhitespaceIsSignificant(t *testing.T) {
	products := DefaultProducts()

	// пробелы — часть строки поиска, а не шум вокруг неё
	assert.Empty(t, FilterProducts(products, "", "   NeoWave   "))
	assert.Len(t, FilterProducts(products, "", " "), len(products))
}

func TestFilterProductsIdempotent(t *testing.T) {
	products := DefaultProducts()

	once := FilterProducts(products, domain.CategoryHome, "lamp")
	twice := FilterProducts(once, domain.CategoryHome, "lamp")

	require.NotEmpty(t, once)
	assert.Equal(t, once, twice)
}
