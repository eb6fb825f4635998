package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"merge-service/internal/config"
	mrgHnd "merge-service/internal/merge/handler"
	"merge-service/internal/middleware"
	"merge-service/internal/preset"
	"merge-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, presets *preset.Store) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Post("/sheets", mrgHnd.Sheets(cfg, logger))
	r.Post("/merge", mrgHnd.Merge(cfg, logger))

	r.Route("/presets", func(r chi.Router) {
		r.Get("/", preset.List(presets))
		r.Get("/{name}", preset.Get(presets))
		r.Put("/{name}", preset.Put(presets, logger))
		r.Delete("/{name}", preset.Delete(presets, logger))
	})

	return r
}
