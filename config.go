package sezim

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	envLexiconPath      = "SEZIM_LEXICON_PATH"
	envWorkers          = "SEZIM_WORKERS"
	envStopWordLanguage = "SEZIM_STOPWORD_LANGUAGE"
	envLoggingLevel     = "SEZIM_LOGGING_LEVEL"
	envLoggingFormat    = "SEZIM_LOGGING_FORMAT"
	envMetricsEnabled   = "SEZIM_METRICS_ENABLED"
)

// Config is the configuration of the lexicon and the tools built on it.
type Config struct {
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// LexiconConfig locates the lexicon resource.
type LexiconConfig struct {
	Path string `yaml:"path"`
}

// AnalyzerConfig controls text analysis.
type AnalyzerConfig struct {
	Workers          int    `yaml:"workers"`
	StopWordLanguage string `yaml:"stopWordLanguage"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig toggles Prometheus collectors.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Path: DefaultLexiconPath,
		},
		Analyzer: AnalyzerConfig{
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads a YAML config file (if path is non-empty) over the
// defaults and then applies SEZIM_* environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Options translates the analyzer settings into Option values.
func (c *Config) Options() []Option {
	return []Option{
		WithWorkers(c.Analyzer.Workers),
		WithStopWordLanguage(c.Analyzer.StopWordLanguage),
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envLexiconPath); v != "" {
		cfg.Lexicon.Path = v
	}
	if v := os.Getenv(envWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analyzer.Workers = n
		}
	}
	if v := os.Getenv(envStopWordLanguage); v != "" {
		cfg.Analyzer.StopWordLanguage = v
	}
	if v := os.Getenv(envLoggingLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv(envLoggingFormat); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := os.Getenv(envMetricsEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
}
