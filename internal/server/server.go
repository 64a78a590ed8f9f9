package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/skmobile/csc-center-api/internal/auth"
	"github.com/skmobile/csc-center-api/internal/config"
	"github.com/skmobile/csc-center-api/internal/http/handlers"
	"github.com/skmobile/csc-center-api/internal/http/respond"
	"github.com/skmobile/csc-center-api/internal/middleware"
	"github.com/skmobile/csc-center-api/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, logger *zap.Logger) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	requireAdmin := middleware.RequireAdmin(tokens)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.MethodNotAllowed(handlers.MethodNotAllowed)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Not found")
	})

	handlers.NewHealthHandler(time.Now()).Register(r)

	r.Route("/api", func(api chi.Router) {
		handlers.NewLoginHandler(store, tokens, logger).Register(api)
		handlers.NewServiceHandler(store, logger).Register(api, requireAdmin)
		handlers.NewAccessoryHandler(store, logger).Register(api, requireAdmin)
		handlers.NewRepairHandler(store, logger).Register(api, requireAdmin)
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
