/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, the middleware stack and the route table.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request, echoed in the request log
  2. Logger:     One zap entry per request
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Origins from server.cors_origins

ROUTES:
  GET  /healthz
  POST /api/paydates
  GET  /api/dates/{date}
  GET  /api/dates/{date}/shift
  GET  /api/holidays

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/paydate/serve.go: Server startup
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(h.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/paydates", h.CalculatePaydates)

		r.Route("/dates/{date}", func(r chi.Router) {
			r.Get("/", h.ClassifyDate)
			r.Get("/shift", h.ShiftDate)
		})

		r.Get("/holidays", h.ListHolidays)
	})

	return r
}

// RequestLogger logs every request through zap once the response is written.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("op", "api.request"),
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
