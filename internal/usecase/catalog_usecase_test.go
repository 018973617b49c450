package usecase

import (
	"context"
	"testing"

	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogUCForTest(productRepo *fakeProductRepo, images *fakeImagesInfra) *CatalogUseCase {
	return NewCatalogUC(productRepo, &fakeCategoryRepo{}, &fakeOutboxRepo{}, brokenPool{}, images, nopLogger{})
}

func TestCatalogLoadFallsBackToDefaultsOnError(t *testing.T) {
	uc := newCatalogUCForTest(&fakeProductRepo{getErr: errStorageDown}, &fakeImagesInfra{})

	uc.Load(context.Background())

	products := uc.ListProducts("", "")
	require.Len(t, products, 9)
	assert.Equal(t, "NeoWave Noise Cancelling Headphones", products[0].Name)
}

func TestCatalogLoadSeedsDefaultsWhenStorageEmpty(t *testing.T) {
	// запись набора тоже не удаётся: каталог отдаётся из памяти со
	// встроенными идентификаторами
	uc := newCatalogUCForTest(&fakeProductRepo{}, &fakeImagesInfra{})

	uc.Load(context.Background())

	products := uc.ListProducts("", "")
	require.Len(t, products, 9)
	assert.Equal(t, int64(1), products[0].ID)
}

func TestCatalogLoadUsesStoredProducts(t *testing.T) {
	stored := []domain.Product{
		{ID: 42, Name: "Stored Lamp", Description: "desc", Price: 100, CategoryName: domain.CategoryHome},
	}
	uc := newCatalogUCForTest(&fakeProductRepo{products: stored}, &fakeImagesInfra{})

	uc.Load(context.Background())

	products := uc.ListProducts("", "")
	require.Len(t, products, 1)
	assert.Equal(t, int64(42), products[0].ID)
}

func TestCatalogAddProductSurvivesPersistFailure(t *testing.T) {
	uc := newCatalogUCForTest(&fakeProductRepo{getErr: errStorageDown}, &fakeImagesInfra{})
	ctx := context.Background()
	uc.Load(ctx)

	res, err := uc.AddProduct(ctx, &AddProductReq{
		Name:         "Solar Lantern",
		Description:  "সোলার চার্জে চলা ক্যাম্পিং লণ্ঠন।",
		CategoryName: domain.CategoryOutdoor,
		Price:        250000,
	})
	require.NoError(t, err)
	assert.False(t, res.Persisted)

	// локальный идентификатор продолжает нумерацию встроенного набора
	assert.Equal(t, int64(10), res.Product.ID)

	products := uc.ListProducts("", "")
	require.Len(t, products, 10)
	// новый товар встаёт первым
	assert.Equal(t, "Solar Lantern", products[0].Name)

	found, ok := uc.FindProduct(res.Product.ID)
	require.True(t, ok)
	assert.Equal(t, "Solar Lantern", found.Name)
}

func TestCatalogAddProductLocalIDsAreUnique(t *testing.T) {
	uc := newCatalogUCForTest(&fakeProductRepo{getErr: errStorageDown}, &fakeImagesInfra{})
	ctx := context.Background()
	uc.Load(ctx)

	first, err := uc.AddProduct(ctx, &AddProductReq{
		Name: "A", Description: "d", CategoryName: domain.CategoryHome, Price: 1,
	})
	require.NoError(t, err)

	second, err := uc.AddProduct(ctx, &AddProductReq{
		Name: "B", Description: "d", CategoryName: domain.CategoryHome, Price: 1,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.Product.ID, second.Product.ID)
}

func TestCatalogAddProductValidation(t *testing.T) {
	uc := newCatalogUCForTest(&fakeProductRepo{getErr: errStorageDown}, &fakeImagesInfra{})
	ctx := context.Background()

	testCases := []struct {
		name string
		req  AddProductReq
		want error
	}{
		{
			name: "empty name",
			req:  AddProductReq{Description: "d", CategoryName: domain.CategoryHome, Price: 1},
			want: e.ErrProductNameRequired,
		},
		{
			name: "empty description",
			req:  AddProductReq{Name: "n", CategoryName: domain.CategoryHome, Price: 1},
			want: e.ErrMissingFields,
		},
		{
			name: "unknown category",
			req:  AddProductReq{Name: "n", Description: "d", CategoryName: "Groceries", Price: 1},
			want: e.ErrUnknownCategory,
		},
		{
			name: "category All is not assignable",
			req:  AddProductReq{Name: "n", Description: "d", CategoryName: domain.CategoryAll, Price: 1},
			want: e.ErrUnknownCategory,
		},
		{
			name: "negative price",
			req:  AddProductReq{Name: "n", Description: "d", CategoryName: domain.CategoryHome, Price: -1},
			want: e.ErrPriceNegative,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.AddProduct(ctx, &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCatalogAddProductUploadsImage(t *testing.T) {
	images := &fakeImagesInfra{url: "https://cdn.example.com/products/lamp.jpg"}
	uc := newCatalogUCForTest(&fakeProductRepo{getErr: errStorageDown}, images)
	ctx := context.Background()
	uc.Load(ctx)

	res, err := uc.AddProduct(ctx, &AddProductReq{
		Name:         "Lamp",
		Description:  "d",
		CategoryName: domain.CategoryHome,
		Price:        1000,
		Image:        NewProductImage([]byte{0xFF, 0xD8}, "image/jpeg", 2, "lamp.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, images.uploads)
	assert.Equal(t, images.url, res.Product.Image)
}

func TestCatalogAddProductUploadFailureIsFatal(t *testing.T) {
	images := &fakeImagesInfra{uploadErr: errStorageDown}
	uc := newCatalogUCForTest(&fakeProductRepo{getErr: errStorageDown}, images)
	ctx := context.Background()
	uc.Load(ctx)

	_, err := uc.AddProduct(ctx, &AddProductReq{
		Name:         "Lamp",
		Description:  "d",
		CategoryName: domain.CategoryHome,
		Price:        1000,
		Image:        NewProductImage([]byte{0xFF, 0xD8}, "image/jpeg", 2, "lamp.jpg"),
	})
	require.Error(t, err)

	// неудачная загрузка не оставляет товар в каталоге
	assert.Len(t, uc.ListProducts("", ""), 9)
}

func TestCatalogAddProductCancelledRequestCleansUpImage(t *testing.T) {
	images := &fakeImagesInfra{url: "https://cdn.example.com/products/lamp.jpg"}
	uc := newCatalogUCForTest(&fakeProductRepo{getErr: errStorageDown}, images)
	uc.Load(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.AddProduct(ctx, &AddProductReq{
		Name:         "Lamp",
		Description:  "d",
		CategoryName: domain.CategoryHome,
		Price:        1000,
		Image:        NewProductImage([]byte{0xFF, 0xD8}, "image/jpeg", 2, "lamp.jpg"),
	})
	require.Error(t, err)

	// оборванный запрос не оставляет ни товара в снимке, ни объекта в S3
	assert.Len(t, uc.ListProducts("", ""), 9)
	assert.Equal(t, []string{"products/lamp.jpg"}, images.cleanups)
}

func TestCatalogAddProductDefaults(t *testing.T) {
	uc := newCatalogUCForTest(&fakeProductRepo{getErr: errStorageDown}, &fakeImagesInfra{})
	ctx := context.Background()
	uc.Load(ctx)

	res, err := uc.AddProduct(ctx, &AddProductReq{
		Name:         "Bare Product",
		Description:  "d",
		CategoryName: domain.CategoryFashion,
		Price:        500,
	})
	require.NoError(t, err)
	assert.Equal(t, defaultProductImage, res.Product.Image)
	assert.Equal(t, []string{"fashion", "new"}, res.Product.Tags)
	assert.Equal(t, 5.0, res.Product.Rating)
	assert.Zero(t, res.Product.ReviewsCount)
}
