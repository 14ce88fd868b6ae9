// Package server exposes payload ingestion and report lookup over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgerview/internal/logger"
	"github.com/cleared-dev/ledgerview/internal/normalize"
	"github.com/cleared-dev/ledgerview/internal/store"
)

// MaxPayloadBytes bounds the webhook request body.
const MaxPayloadBytes = 10 << 20

const shutdownTimeout = 10 * time.Second

// Server handles the HTTP API.
type Server struct {
	store   store.Store
	opts    normalize.Options
	log     zerolog.Logger
	version string
	engine  *gin.Engine
}

// GinMode maps a log level to gin's mode. Only debug and trace logging keep
// gin's debug output.
func GinMode(level string) string {
	if logger.ParseLevel(level) <= zerolog.DebugLevel {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// New builds a server over st. opts are the normalizer defaults used when a
// stored payload is rebuilt into a report.
func New(st store.Store, opts normalize.Options, log zerolog.Logger, version string) *Server {
	s := &Server{store: st, opts: opts, log: log, version: version}

	engine := gin.New()
	engine.UseRawPath = true
	engine.Use(gin.Recovery(), s.requestLogger())

	api := engine.Group("/api")
	api.GET("/health", s.HandleHealth)
	api.POST("/webhook", s.HandleWebhook)
	api.GET("/report/", s.HandleReport)
	api.GET("/report/:key", s.HandleReport)

	s.engine = engine
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info().Msg("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}
