package sezim

import (
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
)

// SentenceAnalysis is the analysis of one sentence of a larger text.
type SentenceAnalysis struct {
	Sentence string             `json:"sentence"`
	Result   TextAnalysisResult `json:"result"`
}

// segment splits text into sentences with an untrained Punkt tokenizer, which
// breaks on sentence-final punctuation without language-specific abbreviation
// data.
func segment(text string) []string {
	tokenizer := sentences.NewSentenceTokenizer(sentences.NewStorage())

	var out []string
	for _, s := range tokenizer.Tokenize(text) {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// AnalyzeSentences analyzes each sentence of text separately. Blank text
// yields no sentences.
func (an *Analyzer) AnalyzeSentences(text string) []SentenceAnalysis {
	parts := segment(text)
	out := make([]SentenceAnalysis, 0, len(parts))
	for _, s := range parts {
		out = append(out, SentenceAnalysis{Sentence: s, Result: an.Analyze(s)})
	}
	return out
}
