package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/obfm/ncd/internal/check"
	"github.com/obfm/ncd/internal/codec"
	"github.com/obfm/ncd/internal/report"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultAlgorithm = codec.DefaultAlgorithm
	DefaultLevel     = codec.DefaultLevel
	DefaultFormat    = report.FormatText
	DefaultLogLevel  = "warn"
)

// Config is the complete tool configuration. Fields map 1:1 to the YAML file.
type Config struct {
	Compressor CompressorConfig `yaml:"compressor"`
	Output     OutputConfig     `yaml:"output"`
	Checks     []CheckConfig    `yaml:"checks"`
	Log        LogConfig        `yaml:"log"`
}

// CompressorConfig pins the algorithm-and-level pair used for every
// compression in a run.
type CompressorConfig struct {
	// Algorithm is one of: zlib | bzip2 | gzip | deflate | zstd | brotli | xz.
	Algorithm string `yaml:"algorithm"`

	// Level is the algorithm-specific compression level.
	Level int `yaml:"level"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Format is one of: text | json | prom.
	Format string `yaml:"format"`

	// Sizes prints the three raw compressed sizes before ΔK and NCD
	// (text format only).
	Sizes bool `yaml:"sizes"`
}

// CheckConfig is one named threshold condition.
type CheckConfig struct {
	// Name identifies the check in failure messages. Defaults to Condition.
	Name string `yaml:"name"`

	// Condition is an expression like "ncd < 0.3" or "delta_k <= 64".
	Condition string `yaml:"condition"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	// Level is one of: debug | info | warn | error.
	Level string `yaml:"level"`
}

// SlogLevel converts Level to a slog.Level. Unknown values map to warn;
// Validate rejects them before this is reached.
func (l LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Defaults returns a Config pre-populated with default values. It is the
// effective configuration when no file is given.
func Defaults() *Config {
	return &Config{
		Compressor: CompressorConfig{
			Algorithm: DefaultAlgorithm,
			Level:     DefaultLevel,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks enums and ranges. Call it again after applying CLI
// overrides.
func Validate(cfg *Config) error {
	lo, hi, err := codec.Levels(cfg.Compressor.Algorithm)
	if err != nil {
		return fmt.Errorf("config: compressor.algorithm: unknown %q (supported: %v)",
			cfg.Compressor.Algorithm, codec.Algorithms())
	}
	if cfg.Compressor.Level < lo || cfg.Compressor.Level > hi {
		return fmt.Errorf("config: compressor.level %d out of range [%d, %d] for %s",
			cfg.Compressor.Level, lo, hi, cfg.Compressor.Algorithm)
	}

	switch cfg.Output.Format {
	case report.FormatText, report.FormatJSON, report.FormatProm:
	default:
		return fmt.Errorf("config: output.format: unknown %q (supported: %v)",
			cfg.Output.Format, report.Formats())
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level: unknown %q", cfg.Log.Level)
	}

	for i, c := range cfg.Checks {
		if _, err := check.Parse(c.Name, c.Condition); err != nil {
			return fmt.Errorf("config: checks[%d]: %w", i, err)
		}
	}
	return nil
}

// ParsedChecks returns the configured checks in file order.
// It assumes Validate has passed.
func (c *Config) ParsedChecks() ([]check.Check, error) {
	out := make([]check.Check, 0, len(c.Checks))
	for i, cc := range c.Checks {
		pc, err := check.Parse(cc.Name, cc.Condition)
		if err != nil {
			return nil, fmt.Errorf("config: checks[%d]: %w", i, err)
		}
		out = append(out, pc)
	}
	return out, nil
}
