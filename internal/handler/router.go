package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/defnotwig/portfolio/backend/internal/config"
	chatHandler "github.com/defnotwig/portfolio/backend/internal/handler/chat"
	contentHandler "github.com/defnotwig/portfolio/backend/internal/handler/content"
	kbHandler "github.com/defnotwig/portfolio/backend/internal/handler/kb"
	"github.com/defnotwig/portfolio/backend/internal/middleware"
	contentModel "github.com/defnotwig/portfolio/backend/internal/model/content"
	kbModel "github.com/defnotwig/portfolio/backend/internal/model/kb"
	chatService "github.com/defnotwig/portfolio/backend/internal/service/chat"
	"github.com/defnotwig/portfolio/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg *config.Config, chatSvc *chatService.Service, contents contentModel.Store, faqs kbModel.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsMiddleware(cfg.CORS))

	chat := chatHandler.New(chatSvc)
	content := contentHandler.New(contents)
	kb := kbHandler.New(faqs, cfg.KB.AdminToken)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		// Chat is never cached.
		chat.RegisterRoutes(api)

		// Static content and the FAQ list are aggressively cacheable.
		api.Group(func(cached chi.Router) {
			cached.Use(middleware.LongCache)
			content.RegisterRoutes(cached)
			kb.RegisterRoutes(cached)
		})
	})

	return r
}

// corsMiddleware allows the configured SPA origin, local dev ports, the
// production domains, and any Vercel preview deployment.
func corsMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	allowed := cfg.AllowedOrigins()

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			for _, candidate := range allowed {
				if candidate == origin {
					return true
				}
			}
			return strings.HasSuffix(origin, ".vercel.app")
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.AdminTokenHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
