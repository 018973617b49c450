package http

import (
	_ "github.com/hothat-pawa/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/hothat-pawa/go-backend/internal/cfg"
	"github.com/hothat-pawa/go-backend/internal/usecase"
	"github.com/hothat-pawa/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	cfg    *cfg.Config
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.Config, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, chatUC usecase.ChatUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(catalogUC, r.cfg.Minio, r.logger))
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerChatRoutes(v1, NewChatHandler(chatUC, r.cfg.Minio, r.logger))

		contactHandler := NewContactHandler(r.cfg.Contact)
		v1.Get("/contact", contactHandler.getContact)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/", prHandler.registerNewProduct)
	})
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", cartHandler.getCart)
		cr.Route("/items", func(items chi.Router) {
			items.Post("/", cartHandler.addItem)
			items.Patch("/{product_id}", cartHandler.updateQuantity)
			items.Delete("/{product_id}", cartHandler.removeItem)
		})
	})
}

func registerChatRoutes(router chi.Router, chatHandler *ChatHandler) {
	router.Route("/chat", func(ch chi.Router) {
		ch.Get("/messages", chatHandler.history)
		ch.Post("/messages", chatHandler.submit)
	})
}
