package sezim

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for lexicon loads, word lookups and
// analyzed texts. All methods are no-ops on a nil *Metrics.
type Metrics struct {
	WordLookupsTotal    *prometheus.CounterVec
	TextsAnalyzedTotal  prometheus.Counter
	TokensTotal         prometheus.Counter
	LexiconEntries      prometheus.Gauge
	LexiconLoadDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		WordLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sezim_word_lookups_total",
				Help: "Total number of word lookups by result (hit, miss).",
			},
			[]string{"result"},
		),
		TextsAnalyzedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sezim_texts_analyzed_total",
				Help: "Total number of analyzed texts.",
			},
		),
		TokensTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sezim_tokens_total",
				Help: "Total number of whitespace tokens seen by the analyzer.",
			},
		),
		LexiconEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sezim_lexicon_entries",
				Help: "Number of distinct words in the loaded lexicon.",
			},
		),
		LexiconLoadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sezim_lexicon_load_seconds",
				Help:    "Time spent reading the lexicon resource.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.WordLookupsTotal,
			m.TextsAnalyzedTotal,
			m.TokensTotal,
			m.LexiconEntries,
			m.LexiconLoadDuration,
		)
	}
	return m
}

func (m *Metrics) observeLookup(found bool) {
	if m == nil {
		return
	}
	result := "miss"
	if found {
		result = "hit"
	}
	m.WordLookupsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) observeText(tokens int) {
	if m == nil {
		return
	}
	m.TextsAnalyzedTotal.Inc()
	m.TokensTotal.Add(float64(tokens))
}

func (m *Metrics) observeLoad(entries int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.LexiconEntries.Set(float64(entries))
	m.LexiconLoadDuration.Observe(elapsed.Seconds())
}
