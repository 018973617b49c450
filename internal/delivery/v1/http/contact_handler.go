package http

import (
	"fmt"
	"net/http"

	"github.com/hothat-pawa/go-backend/internal/cfg"
)

type ContactHandler struct {
	cfg *cfg.ContactCfg
}

func NewContactHandler(cfg *cfg.ContactCfg) *ContactHandler {
	return &ContactHandler{cfg: cfg}
}

// getContact
//
//	@Summary	Контакт магазина для прямого заказа
//	@Tags		contact
//	@Produce	json
//	@Success	200	{object}	ContactResponse
//	@Router		/contact [get]
func (c *ContactHandler) getContact(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, &ContactResponse{
		WhatsAppNumber: c.cfg.WhatsAppNumber,
		WhatsAppLink:   fmt.Sprintf("https://wa.me/%s", c.cfg.WhatsAppNumber),
	})
}
