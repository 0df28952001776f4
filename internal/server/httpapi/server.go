// Package httpapi exposes the authentication contract over HTTP:
// POST /api/auth/login plus a health probe.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/albertopena123/evaluacion-enla/internal/logging"
	"github.com/albertopena123/evaluacion-enla/internal/server/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type HTTPServer struct {
	address string
	logger  logging.Logger
	users   *users.Service
	origins []string
}

func NewHTTPServer(address string, l logging.Logger, us *users.Service, corsOrigin string) (*HTTPServer, error) {
	// allow a comma-separated list of origins
	var origins []string
	for _, p := range strings.Split(corsOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}

	return &HTTPServer{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		origins: origins,
	}, nil
}

// Router builds the chi router with middleware and routes. Exposed for
// handler tests.
func (s *HTTPServer) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/api/auth/login", s.handleLogin)
	r.Get("/api/health", s.handleHealth)

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
