// Package server exposes the cover pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz          build information
//	POST /v1/covers        compute a cover, returns the stored record
//	GET  /v1/covers/{id}   fetch a stored record
//
// Errors are returned as {"error": {"code": ..., "message": ...}} with the
// status from [errors.HTTPStatus].
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pathcover/pkg/config"
	"github.com/matzehuels/pathcover/pkg/observability"
	"github.com/matzehuels/pathcover/pkg/pipeline"
	"github.com/matzehuels/pathcover/pkg/store"
)

// Server handles API requests. It is safe for concurrent use; every request
// runs its own pipeline.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	cfg    config.Server
}

// New creates a server. runner and st must not be nil.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger, cfg config.Server) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = config.Default().Server.MaxBodyBytes
	}
	if cfg.RequestTimeout.Duration <= 0 {
		cfg.RequestTimeout = config.Default().Server.RequestTimeout
	}
	return &Server{runner: runner, store: st, logger: logger, cfg: cfg}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout.Duration))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/covers", func(r chi.Router) {
		r.Post("/", s.handleCreateCover)
		r.Get("/{id}", s.handleGetCover)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// observe reports requests to the server hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		hooks.OnResponse(r.Context(), r.Method, route, ww.Status(), time.Since(start))
	})
}
