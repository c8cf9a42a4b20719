// Package web serves level generation and share-token decoding over HTTP.
package web

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zip-arcade/internal/config"
	"github.com/vovakirdan/zip-arcade/internal/games/zip"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP share server.
type Server struct {
	engine  *zip.Engine
	cfg     config.HTTPConfig
	logger  *log.Logger
	limiter *RateLimiter
	handler http.Handler
}

// NewServer builds the server and its middleware chain.
// Call Close to release the rate limiter when the server is not run
// through ListenAndServe.
func NewServer(engine *zip.Engine, cfg config.HTTPConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		engine:  engine,
		cfg:     cfg,
		logger:  logger,
		limiter: NewRateLimiter(cfg.RateLimit, logger),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/levels", s.handleGenerate)
	// Remainder wildcard: standard base64 tokens may contain '/'.
	mux.HandleFunc("GET /api/levels/{token...}", s.handleDecode)
	mux.HandleFunc("GET /play", s.handlePlay)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	var h http.Handler = mux
	h = s.limiter.Middleware(h)
	h = loggingMiddleware(logger)(h)
	h = requestIDMiddleware(h)
	h = newCORS(cfg.CORSOrigins, logger).Handler(h)
	s.handler = h
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close stops background work.
func (s *Server) Close() {
	s.limiter.Stop()
}

// ListenAndServe serves on the configured address until ctx is done,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		s.Close()
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.Close()

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
