package sezim

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower applies Kazakh casing rules. A Caser keeps state between calls, so a
// new one is created for each string.
func lower(s string) string {
	return cases.Lower(language.Kazakh).String(s)
}

// Normalize lowercases word and strips surrounding whitespace. It is the key
// form used by the lexicon.
func Normalize(word string) string {
	return strings.TrimSpace(lower(word))
}

// WordAnnotation is the affect annotation of a single word. It owns a copy of
// the lexicon row and never references the table.
type WordAnnotation struct {
	Word  string
	Found bool

	scores     EmotionScores
	sentiment  int
	isPositive bool
	isNegative bool
	isNeutral  bool
}

// Annotate looks up word in table. Words the table does not know get the
// neutral default rather than an error.
func Annotate(table *Table, word string) WordAnnotation {
	norm := Normalize(word)
	entry, ok := table.Find(norm)
	if !ok {
		return WordAnnotation{Word: norm, isNeutral: true}
	}
	return WordAnnotation{
		Word:       norm,
		Found:      true,
		scores:     entry.Emotions,
		sentiment:  entry.Sentiment,
		isPositive: entry.IsPositive,
		isNegative: entry.IsNegative,
		isNeutral:  entry.IsNeutral,
	}
}

// Emotions returns a fresh map of every emotion tag to its value.
func (a WordAnnotation) Emotions() map[Emotion]int {
	return a.scores.Map()
}

// Scores returns the emotion values in canonical order.
func (a WordAnnotation) Scores() EmotionScores {
	return a.scores
}

// Sentiment returns the polarity: 1, -1 or 0.
func (a WordAnnotation) Sentiment() int {
	return a.sentiment
}

// SentimentLabel maps Sentiment to positive, negative or neutral.
func (a WordAnnotation) SentimentLabel() SentimentLabel {
	return LabelFor(a.sentiment)
}

func (a WordAnnotation) IsPositive() bool { return a.isPositive }
func (a WordAnnotation) IsNegative() bool { return a.isNegative }
func (a WordAnnotation) IsNeutral() bool  { return a.isNeutral }

// HasEmotion reports whether the word carries the named emotion. Any tag
// outside the fixed set yields an *UnknownEmotionError.
func (a WordAnnotation) HasEmotion(tag string) (bool, error) {
	emo, err := ParseEmotion(tag)
	if err != nil {
		return false, err
	}
	return a.scores.Get(emo) != 0, nil
}

// EmotionCount returns how many emotions the word carries (0..8).
func (a WordAnnotation) EmotionCount() int {
	return a.scores.Sum()
}

// String renders the annotation for humans.
func (a WordAnnotation) String() string {
	emotions := "none"
	if active := a.scores.Active(); len(active) > 0 {
		names := make([]string, len(active))
		for i, emo := range active {
			names[i] = string(emo)
		}
		emotions = strings.Join(names, ", ")
	}
	return fmt.Sprintf("Word: %s\nSentiment: %s\nEmotions: %s", a.Word, a.SentimentLabel(), emotions)
}

// GoString is the short diagnostic form used by %#v.
func (a WordAnnotation) GoString() string {
	return fmt.Sprintf("WordAnnotation(word=%q, sentiment=%s, emotions=%d)", a.Word, a.SentimentLabel(), a.EmotionCount())
}

// Annotator annotates single words against a loaded lexicon.
type Annotator struct {
	table   *Table
	metrics *Metrics
}

// NewAnnotator loads lex and returns an annotator bound to its table. The
// lexicon's load error is returned unchanged.
func NewAnnotator(lex *Lexicon, opts ...Option) (*Annotator, error) {
	o := applyOptions("annotator", opts)
	table, err := lex.Load()
	if err != nil {
		return nil, err
	}
	return &Annotator{table: table, metrics: o.Metrics}, nil
}

// Annotate returns the annotation of word.
func (an *Annotator) Annotate(word string) WordAnnotation {
	a := Annotate(an.table, word)
	an.metrics.observeLookup(a.Found)
	return a
}

// Table returns the table the annotator reads from.
func (an *Annotator) Table() *Table {
	return an.table
}
