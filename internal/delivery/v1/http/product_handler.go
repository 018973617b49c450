package http

import (
	"net/http"

	"github.com/hothat-pawa/go-backend/internal/cfg"
	"github.com/hothat-pawa/go-backend/internal/usecase"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/hothat-pawa/go-backend/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	cfg            *cfg.MinIOCfg
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, cfg *cfg.MinIOCfg, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, cfg: cfg, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров каталога
//	@Description	Возвращает товары с опциональной фильтрацией по категории и подстроке
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Категория (All или пустая — без фильтра)"
//	@Param			q			query		string	false	"Подстрока для поиска по названию и описанию"
//	@Success		200			{object}	ProductListResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	products := p.catalogUsecase.ListProducts(category, query)
	WriteSuccess(w, http.StatusOK, NewProductListResponse(products))
}

// registerNewProduct
//
//	@Summary		Регистрация нового товара
//	@Description	Создает новый товар в каталоге с опциональным изображением
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название товара"
//	@Param			description	formData	string	true	"Описание"
//	@Param			category	formData	string	true	"Категория"
//	@Param			price		formData	number	true	"Цена в таках"
//	@Param			tags		formData	string	false	"Теги через запятую"
//	@Param			image		formData	file	false	"Изображение товара"
//	@Param			image_url	formData	string	false	"Внешний URL изображения"
//	@Success		201			{object}	AddProductResponse	"Успешное создание"
//	@Failure		400			{object}	ErrorResponse		"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) registerNewProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	prMeta, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"], p.cfg.MaxFileSize)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.catalogUsecase.AddProduct(r.Context(), &usecase.AddProductReq{
		Name:         prMeta.Name,
		Description:  prMeta.Description,
		CategoryName: prMeta.CategoryName,
		Price:        prMeta.Price,
		Tags:         prMeta.Tags,
		ImageURL:     prMeta.ImageURL,
		Image:        image,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &AddProductResponse{
		Product:   NewProductResponse(res.Product),
		Persisted: res.Persisted,
	})
}
