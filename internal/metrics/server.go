package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roost/internal/config"
)

// HTTPServer exposes /metrics and /health.
type HTTPServer struct {
	Logger *slog.Logger
	Config *config.Config

	srv *http.Server
}

func (s *HTTPServer) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "metrics.HTTPServer")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.srv = &http.Server{
		Addr:    s.Config.MetricsAddr,
		Handler: mux,
	}
	return nil
}

func (s *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.Logger.Info("metrics server listening", "addr", s.srv.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
