package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hothat-pawa/go-backend/internal/cfg"
	"github.com/hothat-pawa/go-backend/internal/domain"
	"github.com/hothat-pawa/go-backend/internal/usecase"
	"github.com/hothat-pawa/go-backend/pkg/e"
	"github.com/hothat-pawa/go-backend/pkg/logger"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUC
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUC, cfg *cfg.MinIOCfg, logger logger.Logger) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase, cfg: cfg, logger: logger}
}

type submitMessageRequest struct {
	Text string `json:"text"`
}

// history
//
//	@Summary	Переписка текущей сессии
//	@Tags		chat
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success	200				{object}	ChatHistoryResponse
//	@Router		/chat/messages [get]
func (c *ChatHandler) history(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)

	messages, err := c.chatUsecase.History(r.Context(), sid)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewChatHistoryResponse(messages))
}

// submit
//
//	@Summary		Отправка сообщения ассистенту
//	@Description	Принимает JSON с текстом или multipart/form-data с текстом и изображением.
//	@Description	Пока ход не завершён, повторная отправка отклоняется с 409.
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Идентификатор сессии"
//	@Success		200				{object}	ChatMessageResponse	"Ответ ассистента"
//	@Failure		400				{object}	ErrorResponse		"Пустое сообщение"
//	@Failure		409				{object}	ErrorResponse		"Ход уже идёт"
//	@Router			/chat/messages [post]
func (c *ChatHandler) submit(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
	)

	sid := sessionID(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	text, image, err := c.parseSubmit(r, maxMemory)
	if err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	reply, err := c.chatUsecase.Submit(r.Context(), sid, text, image)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewChatMessageResponse(reply))
}

// parseSubmit разбирает тело запроса: multipart с опциональным изображением
// либо JSON с одним текстовым полем.
func (c *ChatHandler) parseSubmit(r *http.Request, maxMemory int64) (string, *domain.InlineImage, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return "", nil, e.Wrap("parse multipart", e.ErrStatusBadRequest)
		}

		text := r.FormValue("text")

		productImage, err := parseImage(r.MultipartForm.File["image"], c.cfg.MaxFileSize)
		if err != nil {
			return "", nil, err
		}

		var image *domain.InlineImage
		if productImage != nil {
			image = &domain.InlineImage{
				Data:     productImage.Data,
				MimeType: productImage.MimeType,
			}
		}

		return text, image, nil
	}

	var req submitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", nil, e.Wrap("decode body", e.ErrStatusBadRequest)
	}

	return req.Text, nil, nil
}
