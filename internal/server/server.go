// Package server turns the router into a running HTTP server with CORS and
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/maxviazov/league-registry/internal/config"
)

// New wraps h with CORS and applies the configured timeouts.
func New(cfg *config.Config, h http.Handler) *http.Server {
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedHeaders: []string{"*"},
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           c.Handler(h),
		ReadTimeout:       seconds(cfg.HTTP.ReadTimeout),
		ReadHeaderTimeout: seconds(cfg.HTTP.ReadTimeout),
		WriteTimeout:      seconds(cfg.HTTP.WriteTimeout),
	}
}

// Run serves until ctx is done, then drains in-flight requests for at most
// shutdownTimeout.
func Run(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info().Msg("http server stopped")
	return nil
}

func seconds(n int) time.Duration { return time.Duration(n) * time.Second }
