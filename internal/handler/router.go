package handler

import (
	"net/http"

	"classsync/internal/logging"
	"classsync/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Services struct {
	Auth        AuthService
	Profiles    ProfileService
	Classes     ClassService
	Assignments AssignmentService
	States      StateService
	Settings    SettingsService
}

// NewRouter mounts the JSON API. Everything except /auth, /health and
// /metrics requires a bearer token.
func NewRouter(logger *logging.Logger, tokens middleware.TokenParser, s Services, reg *prometheus.Registry) http.Handler {
	metrics := middleware.NewMetrics(reg)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(metrics.Middleware)
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, maxBodyBytes)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/auth", NewAuthHandler(s.Auth).RegisterRoutes)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Route("/profiles", NewProfileHandler(s.Profiles).RegisterRoutes)
		r.Route("/classes", NewClassHandler(s.Classes).RegisterRoutes)
		r.Route("/assignments", NewAssignmentHandler(s.Assignments).RegisterRoutes)
		r.Route("/states", NewStateHandler(s.States).RegisterRoutes)
		r.Route("/settings", NewSettingsHandler(s.Settings).RegisterRoutes)
	})

	return r
}
