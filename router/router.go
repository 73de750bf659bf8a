// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raahsetu/raah-setu/cliparse"
	"github.com/raahsetu/raah-setu/db"
	"github.com/raahsetu/raah-setu/handlers"
	"github.com/raahsetu/raah-setu/middleware"
	"github.com/raahsetu/raah-setu/models"
)

func NewRouter(provider db.Provider, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(provider)
	contactHandler := handlers.NewContactHandler(provider)
	healthCheckHandler := handlers.NewHealthCheckHandler(provider)
	incidentHandler := handlers.NewIncidentHandler(provider)
	activityHandler := handlers.NewActivityHandler(provider)
	sosHandler := handlers.NewSOSHandler(provider)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.Instrument(pattern, middleware.WithLogging(h)))
	}

	// One limiter shared by every auth route
	authLimit := middleware.RateLimit(cfg.AuthRateLimit)
	handleAuth := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, authLimit(middleware.Instrument(pattern, middleware.WithLogging(h))))
	}

	// Liveness, no database access
	handle("GET /api/health", handlers.Liveness)

	// Authentication
	handleAuth("POST /api/auth/signup", authHandler.Signup)
	handleAuth("POST /api/auth/login", authHandler.Login)

	// Emergency contacts
	handle("GET /api/emergency-contacts", contactHandler.List)
	handle("POST /api/emergency-contacts", contactHandler.Create)
	handle("PUT /api/emergency-contacts/{id}", contactHandler.Update)
	handle("DELETE /api/emergency-contacts/{id}", contactHandler.Delete)

	// Append-only logs
	handle("GET /api/health-checks", healthCheckHandler.List)
	handle("POST /api/health-checks", healthCheckHandler.Create)
	handle("GET /api/incidents", incidentHandler.List)
	handle("POST /api/incidents", incidentHandler.Create)
	handle("GET /api/activities", activityHandler.List)
	handle("POST /api/activities", activityHandler.Create)
	handle("POST /api/activities/log", activityHandler.Create)

	// SOS
	handle("POST /api/sos/activate", sosHandler.Activate)
	handle("GET /api/sos", sosHandler.List)

	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("RAAH-SETU API v" + models.APIVersion))
	})

	// Everything else: 405 when the path exists under another method
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(mux, r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
			middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		middleware.ErrorResponse(w, http.StatusNotFound, "endpoint not found")
	})

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Recover,
		middleware.CORS,
		middleware.BodyLimit(cfg.MaxBodyBytes),
	)
}

var routedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// allowedMethods lists the methods for which r's path has a route other
// than the catch-all.
func allowedMethods(mux *http.ServeMux, r *http.Request) []string {
	var allow []string
	for _, method := range routedMethods {
		if method == r.Method {
			continue
		}
		probe := r.Clone(r.Context())
		probe.Method = method
		if _, pattern := mux.Handler(probe); pattern != "" && pattern != "/" {
			allow = append(allow, method)
		}
	}
	return allow
}
