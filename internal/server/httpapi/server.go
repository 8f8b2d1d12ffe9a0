// Package httpapi exposes the video store over HTTP: the auth endpoints for
// registration/login, the video catalog, and the customer profiles, plus
// Prometheus metrics. Success responses are JSON; error responses are plain
// text with the error's message, matching the historical API contract.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mpetrenko/videostore/internal/logging"
	"github.com/mpetrenko/videostore/internal/server/config"
	"github.com/mpetrenko/videostore/internal/server/services"
)

type Server struct {
	address         string
	allowedOrigin   string
	shutdownTimeout time.Duration
	logger          logging.Logger

	users     *services.UserService
	customers *services.CustomerService
	videos    *services.VideoService
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, cs *services.CustomerService, vs *services.VideoService) *Server {
	return &Server{
		address:         cfg.EndpointAddr,
		allowedOrigin:   cfg.CORSAllowedOrigin,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          l.With("module", "httpapi"),
		users:           us,
		customers:       cs,
		videos:          vs,
	}
}

// Handler builds the route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.HandleFunc("POST /api/videos", s.handleVideoCreate)
	mux.HandleFunc("GET /api/videos", s.handleVideoList)
	mux.HandleFunc("GET /api/videos/category", s.handleVideosByCategory)
	mux.HandleFunc("GET /api/videos/search", s.handleVideoSearch)
	mux.HandleFunc("GET /api/videos/featured", s.handleVideosFeatured)
	mux.HandleFunc("POST /api/videos/poster-upload", s.handlePosterUpload)
	mux.HandleFunc("GET /api/videos/{id}", s.handleVideoGet)
	mux.HandleFunc("PUT /api/videos/{id}", s.handleVideoUpdate)
	mux.HandleFunc("DELETE /api/videos/{id}", s.handleVideoDelete)

	mux.HandleFunc("POST /api/customers", s.handleCustomerCreate)
	mux.HandleFunc("GET /api/customers", s.handleCustomerList)
	mux.HandleFunc("GET /api/customers/email/{email}", s.handleCustomerGetByEmail)
	mux.HandleFunc("GET /api/customers/{id}", s.handleCustomerGet)
	mux.HandleFunc("PUT /api/customers/{id}", s.handleCustomerUpdate)
	mux.HandleFunc("DELETE /api/customers/{id}", s.handleCustomerDelete)

	mux.Handle("GET /metrics", promhttp.Handler())

	var h http.Handler = mux
	h = s.corsMiddleware(h)
	h = metricsMiddleware(mux, h)
	h = s.loggingMiddleware(h)
	return h
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "err", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
