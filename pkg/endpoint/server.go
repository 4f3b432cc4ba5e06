package endpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
)

const shutdownGrace = 10 * time.Second

// RunServer serves until the listener fails or SIGINT/SIGTERM arrives, then
// drains in-flight requests for up to shutdownGrace.
func RunServer(addr string, server *http.Server) error {
	if server == nil {
		return errors.New("endpoint: nil http server")
	}

	served := make(chan error, 1)
	go func() { served <- server.ListenAndServe() }()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	slog.Info("blog api listening", "address", addr)

	select {
	case err := <-served:
		return listenError(err)
	case sig := <-signals:
		slog.Info("stopping blog api", "address", addr, "signal", sig.String())
	}

	if err := drain(addr, server); err != nil {
		return err
	}

	if err := listenError(<-served); err != nil {
		return err
	}

	slog.Info("blog api stopped", "address", addr)

	return nil
}

func drain(addr string, server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := server.Shutdown(ctx)

	switch {
	case err == nil, errors.Is(err, http.ErrServerClosed):
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		slog.Warn("requests still running after grace period, closing", "address", addr)

		if err := server.Close(); err != nil {
			slog.Error("could not close server", "address", addr, "error", err)
		}

		return nil
	default:
		return fmt.Errorf("endpoint: shutdown: %w", err)
	}
}

func listenError(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return fmt.Errorf("endpoint: listen: %w", err)
}

// ServerHandlerConfig describes what the blog API handler is built from.
type ServerHandlerConfig struct {
	Mux          http.Handler
	IsProduction bool
	DevHost      string
	Wrap         func(http.Handler) http.Handler
}

// NewServerHandler constructs the HTTP handler using the provided configuration.
// Outside production it allows the local blog front end through CORS. Wrap,
// when set, is applied last (Sentry instrumentation in main).
func NewServerHandler(cfg ServerHandlerConfig) http.Handler {
	if cfg.Mux == nil {
		return http.NotFoundHandler()
	}

	handler := cfg.Mux

	if !cfg.IsProduction {
		headers := []string{
			"Accept",
			"Content-Type",
			"User-Agent",
			"X-Request-ID",
			"If-None-Match",
		}

		origins := []string{"http://localhost:5173"}
		if host := cfg.DevHost; host != "" {
			origins = append(origins, host)
		}

		c := cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: headers,
			ExposedHeaders: []string{"ETag", "X-Request-ID"},
		})

		handler = c.Handler(handler)
	}

	if cfg.Wrap != nil {
		handler = cfg.Wrap(handler)
	}

	return handler
}
