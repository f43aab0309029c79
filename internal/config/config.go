package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/adrg/xdg"
)

// AppName is used for the XDG config directory.
const AppName = "textheuristic"

// Defaults for the HTTP server and the CLI.
const (
	DefaultPort                 = 8080
	DefaultReadTimeout          = 30 * time.Second
	DefaultWriteTimeout         = 30 * time.Second
	DefaultMaxRequestSize       = 10 * 1024 * 1024 // 10MB
	DefaultMaxBatchSize         = 100
	DefaultMinRecommendedLength = 50
	DefaultCLIConcurrency       = 4
)

// Configuration validation errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the on-disk configuration shared by cmd/server and cmd/textscore.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Analysis AnalysisConfig `yaml:"analysis"`
	CLI      CLIConfig      `yaml:"cli"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size"`
	// Concurrency of 0 means fasthttp's default.
	Concurrency  int `yaml:"concurrency"`
	MaxBatchSize int `yaml:"max_batch_size"`
	// BatchConcurrency is how many texts of one batch request are scored in parallel.
	BatchConcurrency int           `yaml:"batch_concurrency"`
	WarmUp           bool          `yaml:"warm_up"`
	Tracing          TracingConfig `yaml:"tracing"`
}

// TracingConfig configures request spans of the HTTP server.
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
	// SampleRate is the fraction of requests traced, between 0 and 1.
	SampleRate float64 `yaml:"sample_rate"`
}

// LogConfig configures logging.
type LogConfig struct {
	// File is the log file path; empty means stdout.
	File string `yaml:"file"`
	JSON bool   `yaml:"json"`
}

// AnalysisConfig configures the scorer.
type AnalysisConfig struct {
	MinRecommendedLength int `yaml:"min_recommended_length"`
	// Normalizer is one of "default", "fast" or "fold".
	Normalizer string `yaml:"normalizer"`
}

// CLIConfig configures cmd/textscore.
type CLIConfig struct {
	Format      string `yaml:"format"`
	Concurrency int    `yaml:"concurrency"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:             DefaultPort,
			ReadTimeout:      DefaultReadTimeout,
			WriteTimeout:     DefaultWriteTimeout,
			MaxRequestSize:   DefaultMaxRequestSize,
			MaxBatchSize:     DefaultMaxBatchSize,
			BatchConcurrency: runtime.NumCPU(),
			WarmUp:           true,
			Tracing: TracingConfig{
				Enabled:    true,
				SampleRate: 1,
			},
		},
		Log: LogConfig{
			JSON: true,
		},
		Analysis: AnalysisConfig{
			MinRecommendedLength: DefaultMinRecommendedLength,
			Normalizer:           "default",
		},
		CLI: CLIConfig{
			Format:      "text",
			Concurrency: DefaultCLIConcurrency,
		},
	}
}

// Validate returns the first problem found, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	case c.Server.ReadTimeout <= 0:
		return fmt.Errorf("%w: server.read_timeout must be positive", ErrInvalidConfig)
	case c.Server.WriteTimeout <= 0:
		return fmt.Errorf("%w: server.write_timeout must be positive", ErrInvalidConfig)
	case c.Server.MaxRequestSize <= 0:
		return fmt.Errorf("%w: server.max_request_size must be positive", ErrInvalidConfig)
	case c.Server.Concurrency < 0:
		return fmt.Errorf("%w: server.concurrency must not be negative", ErrInvalidConfig)
	case c.Server.MaxBatchSize <= 0:
		return fmt.Errorf("%w: server.max_batch_size must be positive", ErrInvalidConfig)
	case c.Server.BatchConcurrency <= 0:
		return fmt.Errorf("%w: server.batch_concurrency must be positive", ErrInvalidConfig)
	case c.Server.Tracing.SampleRate < 0 || c.Server.Tracing.SampleRate > 1:
		return fmt.Errorf("%w: server.tracing.sample_rate must be between 0 and 1", ErrInvalidConfig)
	case c.Analysis.MinRecommendedLength < 0:
		return fmt.Errorf("%w: analysis.min_recommended_length must not be negative", ErrInvalidConfig)
	case c.CLI.Concurrency <= 0:
		return fmt.Errorf("%w: cli.concurrency must be positive", ErrInvalidConfig)
	}
	switch c.Analysis.Normalizer {
	case "", "default", "fast", "fold":
	default:
		return fmt.Errorf("%w: unknown analysis.normalizer %q", ErrInvalidConfig, c.Analysis.Normalizer)
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for the application.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
