package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/spath/dijkstra"
)

// ErrInvalidConfig wraps every rejected configuration value.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config aggregates CLI configuration values.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
	Render  RenderConfig  `yaml:"render"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

// EngineConfig selects the shortest-path engine behaviour.
type EngineConfig struct {
	Queue       string `yaml:"queue"`       // lazy|indexed
	Revisits    bool   `yaml:"revisits"`    // process stale pops too
	MaxDistance int64  `yaml:"maxDistance"` // 0 = no cap
}

// RenderConfig controls scene output.
type RenderConfig struct {
	Format string `yaml:"format"` // dot|text|none
	Out    string `yaml:"out"`    // file path; empty = stdout
}

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultQueue         = "lazy"
	defaultRenderFormat  = "text"
)

// Load reads the YAML file at path (skipped when path is empty), fills in
// defaults, then applies SPATH_* environment overrides. The result is not
// validated: callers layer their own overrides (CLI flags) on top and call
// Validate once on the final value.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	return cfg, nil
}

// Default returns the configuration used without a file or environment.
func Default() Config {
	var cfg Config
	applyDefaults(&cfg)

	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLoggingFormat
	}
	if cfg.Engine.Queue == "" {
		cfg.Engine.Queue = defaultQueue
	}
	if cfg.Render.Format == "" {
		cfg.Render.Format = defaultRenderFormat
	}
}

func applyEnv(cfg *Config) {
	cfg.Logging.Level = valueOrDefault("SPATH_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("SPATH_LOG_FORMAT", cfg.Logging.Format)
	cfg.Engine.Queue = valueOrDefault("SPATH_QUEUE", cfg.Engine.Queue)
	cfg.Engine.Revisits = parseBoolWithDefault("SPATH_REVISITS", cfg.Engine.Revisits)
	cfg.Render.Format = valueOrDefault("SPATH_RENDER", cfg.Render.Format)
}

// Validate rejects unknown enumerations and negative caps.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(strings.TrimSpace(c.Logging.Level)); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want text|json)", ErrInvalidConfig, c.Logging.Format)
	}
	if _, err := dijkstra.ParseQueueKind(c.Engine.Queue); err != nil {
		return fmt.Errorf("%w: engine.queue: %w", ErrInvalidConfig, err)
	}
	if c.Engine.MaxDistance < 0 {
		return fmt.Errorf("%w: engine.maxDistance %d is negative", ErrInvalidConfig, c.Engine.MaxDistance)
	}
	switch c.Render.Format {
	case "dot", "text", "none":
	default:
		return fmt.Errorf("%w: render.format %q (want dot|text|none)", ErrInvalidConfig, c.Render.Format)
	}

	return nil
}

// EngineOptions translates the engine section into dijkstra options.
// Call only on a validated Config.
func (c Config) EngineOptions() []dijkstra.Option {
	kind, _ := dijkstra.ParseQueueKind(c.Engine.Queue)
	opts := []dijkstra.Option{dijkstra.WithQueue(kind)}
	if c.Engine.Revisits {
		opts = append(opts, dijkstra.WithRevisits())
	}
	if c.Engine.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.Engine.MaxDistance))
	}

	return opts
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
