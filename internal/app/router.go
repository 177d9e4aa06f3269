package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/admincatalog-backend/internal/auth"
	"github.com/heartmarshall/admincatalog-backend/internal/config"
	"github.com/heartmarshall/admincatalog-backend/internal/service/category"
	"github.com/heartmarshall/admincatalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/admincatalog-backend/internal/transport/rest"
)

// NewRouter assembles the HTTP handler. Health probes stay public; the
// category API requires an admin token unless auth is disabled.
func NewRouter(cfg *config.Config, logger *slog.Logger, svc *category.Service, storage *Storage) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)

	health := rest.NewHealthHandler(BuildVersion(), storage.Deps)
	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	categories := rest.NewCategoryHandler(svc, logger)
	r.Route("/api/v1/categories", func(r chi.Router) {
		if cfg.Auth.Enabled {
			jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			r.Use(middleware.Auth(jwt, auth.RoleAdmin))
		}
		categories.Routes(r)
	})

	return r
}
