package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"causes/internal/http/handlers"
	"causes/internal/middleware"
)

// Options configures the middleware chain around the API routes.
type Options struct {
	Logger          zerolog.Logger
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.RateLimit(opts.RateLimitPerMin, time.Minute),
	)

	r.Get("/", app.Root)
	r.Get("/v1/healthz", app.Health)

	r.Route("/causes", func(r chi.Router) {
		r.Get("/", app.CausesList)
		r.Post("/", app.CausesCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", app.CausesGet)
			r.Put("/", app.CausesUpdate)
			r.Delete("/", app.CausesDelete)
			r.Post("/contribute", app.CausesContribute)
			r.Get("/contributions", app.CausesContributions)
		})
	})

	return r
}
