package app

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"nwalign/internal/domain"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Log levels and formats accepted by Config.
var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
	ginModes   = []string{"", "debug", "release", "test"}
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Penalties domain.Penalties `yaml:"penalties"`
	LogLevel  string           `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string           `yaml:"log_format"` // text or json
	Workers   int              `yaml:"workers"`    // align-mode pool size
	Server    ServerConfig     `yaml:"server"`
	Remote    RemoteConfig     `yaml:"remote"`
}

// ServerConfig configures serve mode.
type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	Port              int           `yaml:"port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	GinMode           string        `yaml:"gin_mode"`
}

// RemoteConfig configures the client used by remote mode.
type RemoteConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Penalties: domain.DefaultPenalties(),
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   runtime.GOMAXPROCS(0),
		Server: ServerConfig{
			Addr:              "0.0.0.0",
			Port:              3000,
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   5 * time.Second,
			GinMode:           "release",
		},
		Remote: RemoteConfig{
			URL:     "http://127.0.0.1:3000",
			Timeout: 30 * time.Second,
		},
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values.
func LoadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks the non-penalty settings. Penalties accept any value.
func (c Config) Validate() error {
	if !oneOf(c.LogLevel, logLevels) {
		return fmt.Errorf("%w: log level %q (want one of %v)", ErrInvalidConfig, c.LogLevel, logLevels)
	}
	if !oneOf(c.LogFormat, logFormats) {
		return fmt.Errorf("%w: log format %q (want one of %v)", ErrInvalidConfig, c.LogFormat, logFormats)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if !oneOf(c.Server.GinMode, ginModes) {
		return fmt.Errorf("%w: gin mode %q", ErrInvalidConfig, c.Server.GinMode)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
