package sezim

import (
	"log/slog"
	"strings"
)

// Analyzer aggregates word annotations over whole texts.
type Analyzer struct {
	annotator *Annotator
	stopWords *stopWordFilter
	workers   int
	logger    *slog.Logger
	metrics   *Metrics
}

// NewAnalyzer loads lex and returns an analyzer bound to its table.
//
// For example,
//
//	an, err := sezim.NewAnalyzer(sezim.DefaultLexicon())
//	res := an.Analyze("бүгін қуаныш пен қайғы")
func NewAnalyzer(lex *Lexicon, opts ...Option) (*Analyzer, error) {
	o := applyOptions("analyzer", opts)
	table, err := lex.Load()
	if err != nil {
		return nil, err
	}
	an := &Analyzer{
		annotator: &Annotator{table: table, metrics: o.Metrics},
		workers:   o.Workers,
		logger:    o.Logger,
		metrics:   o.Metrics,
	}
	if o.StopWordLanguage != "" {
		an.stopWords = newStopWordFilter(o.StopWordLanguage)
	}
	return an, nil
}

// Annotator returns the word annotator the analyzer uses.
func (an *Analyzer) Annotator() *Annotator {
	return an.annotator
}

// Analyze lowercases text, splits it on whitespace runs and sums the
// annotations of the recognized tokens. Unrecognized tokens only count toward
// TotalWords. Repeated words are counted every time they occur.
func (an *Analyzer) Analyze(text string) TextAnalysisResult {
	words := strings.Fields(lower(text))

	result := TextAnalysisResult{
		Text:        text,
		TotalWords:  len(words),
		WordResults: []WordResult{},
	}

	for _, word := range words {
		if an.stopWords.match(word) {
			result.StopWords++
		}

		a := an.annotator.Annotate(word)
		if !a.Found {
			continue
		}

		result.WordsFound++
		result.SentimentScore += a.Sentiment()
		result.Emotions.add(a.Scores())
		result.WordResults = append(result.WordResults, WordResult{
			Word:      word,
			Sentiment: a.SentimentLabel(),
			Emotions:  a.Scores(),
		})
	}

	// Zero means either no sentiment-bearing words or an exact cancellation;
	// WordsFound tells the two apart.
	result.SentimentLabel = LabelFor(result.SentimentScore)

	an.metrics.observeText(result.TotalWords)
	an.logger.Debug("text analyzed",
		"total_words", result.TotalWords,
		"words_found", result.WordsFound,
		"sentiment_score", result.SentimentScore,
	)
	return result
}
