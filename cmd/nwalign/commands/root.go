package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"nwalign/internal/app"
	"nwalign/internal/domain"
)

// rootOptions holds the global flags and the wired application.
type rootOptions struct {
	configPath string
	mismatch   float64
	gap        float64
	logLevel   string
	logFormat  string

	logw io.Writer
	wire *app.Wire
}

// Execute runs the CLI with the process arguments until completion or SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd(os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Logs are written to logw.
func NewRootCmd(logw io.Writer) *cobra.Command {
	opts := &rootOptions{logw: logw}

	root := &cobra.Command{
		Use:          "nwalign",
		Short:        "Global pairwise sequence alignment",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, opts.logw)
			if err != nil {
				return err
			}
			slog.SetDefault(w.Log)
			opts.wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.Float64Var(&opts.mismatch, "mismatch-penalty", domain.DefaultMismatchPenalty, "score added for two differing symbols")
	pf.Float64Var(&opts.gap, "gap-penalty", domain.DefaultGapPenalty, "score added per gap position")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(alignCmd(opts), serveCmd(opts), remoteCmd(opts))
	return root
}

// resolve layers defaults, the optional config file and explicitly set flags.
func (o *rootOptions) resolve(cmd *cobra.Command) (app.Config, error) {
	cfg := app.DefaultConfig()
	if o.configPath != "" {
		if err := app.LoadFile(o.configPath, &cfg); err != nil {
			return app.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("mismatch-penalty") {
		cfg.Penalties.Mismatch = o.mismatch
	}
	if flags.Changed("gap-penalty") {
		cfg.Penalties.Gap = o.gap
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		port, err := flags.GetInt("port")
		if err != nil {
			return app.Config{}, err
		}
		cfg.Server.Port = port
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}
	if flags.Lookup("server") != nil && flags.Changed("server") {
		cfg.Remote.URL, _ = flags.GetString("server")
	}
	return cfg, nil
}
