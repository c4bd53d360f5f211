package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nwalign/internal/observability"
	"nwalign/internal/services/alignment"
)

// Options tunes the HTTP server.
type Options struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server serves the alignment API.
type Server struct {
	router *gin.Engine
	log    *slog.Logger
	opts   Options
}

// New builds the router. gatherer backs GET /metrics; a nil gatherer disables it.
func New(svc *alignment.Service, m *observability.Metrics, gatherer prometheus.Gatherer, log *slog.Logger, opts Options) *Server {
	if log == nil {
		log = slog.Default()
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(log, m))
	SetupRoutes(router, svc, gatherer)
	return &Server{router: router, log: log, opts: opts}
}

// SetupRoutes registers every endpoint on router.
func SetupRoutes(router *gin.Engine, svc *alignment.Service, gatherer prometheus.Gatherer) {
	router.GET("/health", HealthCheck)
	router.POST("/align", HandleAlign(svc))
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

// Router returns the configured engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Listen binds addr:port. Bind failures surface here, before serving starts.
func Listen(addr string, port int) (net.Listener, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort(addr, fmt.Sprint(port)))
	if err != nil {
		return nil, fmt.Errorf("bind port %d: %w", port, err)
	}
	return ln, nil
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("Serving", "addr", "http://"+ln.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	sctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	s.log.Info("Shutting down")
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
