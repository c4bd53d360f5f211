package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"nwalign/internal/align"
	"nwalign/internal/domain"
	"nwalign/internal/observability"
	"nwalign/internal/remote"
	"nwalign/internal/server"
	"nwalign/internal/services/alignment"
	"nwalign/internal/store"
)

// Wire bundles all services and clients for the CLI.
type Wire struct {
	Config     Config
	Log        *slog.Logger
	Registry   *prometheus.Registry
	Metrics    *observability.Metrics
	Aligner    domain.Aligner
	Alignments *alignment.Service
	Server     *server.Server
	Remote     *remote.Client
}

// NewWire validates cfg and constructs the dependency graph. Logs go to logw.
func NewWire(cfg Config, logw io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := NewLogger(logw, cfg.LogLevel, cfg.LogFormat)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.New(reg)

	// One read-only engine shared by every caller.
	engine := align.New(cfg.Penalties)
	svc := alignment.New(engine, store.FileSink{}, metrics, log, cfg.Workers)

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	srv := server.New(svc, metrics, reg, log, server.Options{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
	})

	rc := remote.New(cfg.Remote.URL, &http.Client{Timeout: cfg.Remote.Timeout})

	return &Wire{
		Config:     cfg,
		Log:        log,
		Registry:   reg,
		Metrics:    metrics,
		Aligner:    engine,
		Alignments: svc,
		Server:     srv,
		Remote:     rc,
	}, nil
}
