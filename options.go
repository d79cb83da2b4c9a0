package sezim

import (
	"log/slog"
	"runtime"
)

// An Option changes how a Lexicon, Annotator or Analyzer is built.
//
// For example, it might attach metrics and a quieter logger:
//
//	an, err := sezim.NewAnalyzer(lex, sezim.WithMetrics(m), sezim.WithLogger(l))
type Option func(opts *Options)

// Options holds the settings collected from Option values. Settings that do
// not apply to the component being built are ignored.
type Options struct {
	Logger           *slog.Logger // Logger to use; defaults to slog.Default()
	Metrics          *Metrics     // Prometheus collectors; nil disables metrics
	Workers          int          // Concurrency of AnalyzeBatch
	StopWordLanguage string       // ISO 639-1 code for stop-word counting; empty disables it
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithMetrics records lookups, analyzed texts and lexicon loads in m.
func WithMetrics(m *Metrics) Option {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

// WithWorkers bounds how many texts AnalyzeBatch processes at once.
func WithWorkers(n int) Option {
	return func(opts *Options) {
		opts.Workers = n
	}
}

// WithStopWordLanguage enables stop-word counting for the given language code.
func WithStopWordLanguage(code string) Option {
	return func(opts *Options) {
		opts.StopWordLanguage = code
	}
}

func defaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
	}
}

func applyOptions(component string, opts []Option) Options {
	base := defaultOptions()
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Workers < 1 {
		base.Workers = 1
	}
	logger := base.Logger
	if logger == nil {
		logger = slog.Default()
	}
	base.Logger = logger.With("component", component)
	return base
}
