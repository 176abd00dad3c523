// Package httpapi assembles the HTTP surface: middleware chain and routes.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"enhancer/internal/http/handlers"
	"enhancer/internal/middleware"
)

// RouterOptions carries the knobs the middleware chain needs.
type RouterOptions struct {
	Logger             zerolog.Logger
	CORSAllowedOrigins []string
	RateLimitPerMin    int
}

func NewRouter(app *handlers.App, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.CORSAllowedOrigins),
		middleware.RateLimit(opts.RateLimitPerMin, time.Minute),
	)

	r.Get("/api/health", app.Health)
	r.Get("/api/models", app.Models)
	r.Post("/api/check-api-key", app.CheckAPIKey)
	r.Post("/api/enhance-description", app.EnhanceDescription)
	r.Post("/api/generate-images", app.GenerateImages)
	r.Post("/api/analyze-image", app.AnalyzeImage)
	r.Post("/api/feedback", app.SubmitFeedback)

	return r
}
