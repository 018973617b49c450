package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hothat-pawa/go-backend/internal/usecase"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/hothat-pawa/go-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type updateCartItemRequest struct {
	Delta int `json:"delta"`
}

// getCart
//
//	@Summary	Корзина текущей сессии
//	@Tags		cart
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success	200				{object}	CartResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	view, err := c.cartUsecase.GetCart(r.Context(), sid)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Повторное добавление того же товара увеличивает количество на единицу
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string				false	"Идентификатор сессии"
//	@Param			body			body		addCartItemRequest	true	"Товар"
//	@Success		200				{object}	CartResponse
//	@Failure		404				{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	view, err := c.cartUsecase.AddItem(r.Context(), sid, req.ProductID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// updateQuantity
//
//	@Summary		Изменение количества позиции
//	@Description	Применяет delta к количеству; итог меньше единицы поднимается до единицы
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Идентификатор сессии"
//	@Param			product_id		path		int						true	"ID товара"
//	@Param			body			body		updateCartItemRequest	true	"Дельта количества"
//	@Success		200				{object}	CartResponse
//	@Router			/cart/items/{product_id} [patch]
func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var req updateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	view, err := c.cartUsecase.UpdateQuantity(r.Context(), sid, productID, req.Delta)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// removeItem
//
//	@Summary	Удаление позиции из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Param		product_id		path		int		true	"ID товара"
//	@Success	200				{object}	CartResponse
//	@Router		/cart/items/{product_id} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	view, err := c.cartUsecase.RemoveItem(r.Context(), sid, productID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}
