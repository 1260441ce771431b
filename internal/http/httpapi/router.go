package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Damandeep1313/Kling2.0/internal/http/handlers"
	"github.com/Damandeep1313/Kling2.0/internal/infra"
	"github.com/Damandeep1313/Kling2.0/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer, middleware.Logger(logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.AllowedOrigins))
	}

	r.Get("/", app.Root)
	r.Head("/", app.RootHead)

	r.Get("/v1/healthz", app.Health)

	r.Post("/generate_video", app.GenerateVideo)

	return r
}
