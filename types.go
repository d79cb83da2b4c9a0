package sezim

import (
	"encoding/json"
	"fmt"
)

// Version is the release of the lexicon package.
const Version = "1.0.0"

// Emotion represents one of the fixed emotion tags.
type Emotion string

const (
	Anger        Emotion = "anger"
	Anticipation Emotion = "anticipation"
	Disgust      Emotion = "disgust"
	Fear         Emotion = "fear"
	Joy          Emotion = "joy"
	Sadness      Emotion = "sadness"
	Surprise     Emotion = "surprise"
	Trust        Emotion = "trust"
)

const numEmotions = 8

// Emotions lists every emotion tag in canonical order. The order matches the
// index layout of EmotionScores.
var Emotions = [numEmotions]Emotion{
	Anger, Anticipation, Disgust, Fear, Joy, Sadness, Surprise, Trust,
}

// ParseEmotion returns the tag named by s, or an *UnknownEmotionError.
func ParseEmotion(s string) (Emotion, error) {
	if i := emotionIndex(Emotion(s)); i >= 0 {
		return Emotions[i], nil
	}
	return "", &UnknownEmotionError{Tag: s}
}

func emotionIndex(e Emotion) int {
	for i, emo := range Emotions {
		if emo == e {
			return i
		}
	}
	return -1
}

// EmotionScores holds one value per emotion tag, indexed in Emotions order.
// It is an array, so assignment copies it.
type EmotionScores [numEmotions]int

// Get returns the value for e; unknown tags read as zero.
func (s EmotionScores) Get(e Emotion) int {
	if i := emotionIndex(e); i >= 0 {
		return s[i]
	}
	return 0
}

// Map returns a fresh map containing every tag.
func (s EmotionScores) Map() map[Emotion]int {
	m := make(map[Emotion]int, numEmotions)
	for i, emo := range Emotions {
		m[emo] = s[i]
	}
	return m
}

// Sum adds up the values of all tags.
func (s EmotionScores) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Active returns the tags with a nonzero value, in canonical order.
func (s EmotionScores) Active() []Emotion {
	var active []Emotion
	for i, emo := range Emotions {
		if s[i] != 0 {
			active = append(active, emo)
		}
	}
	return active
}

func (s *EmotionScores) add(other EmotionScores) {
	for i := range s {
		s[i] += other[i]
	}
}

// MarshalJSON encodes the scores as an object keyed by tag.
func (s EmotionScores) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// UnmarshalJSON decodes an object keyed by tag. Unknown tags are rejected.
func (s *EmotionScores) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out EmotionScores
	for k, v := range m {
		i := emotionIndex(Emotion(k))
		if i < 0 {
			return &UnknownEmotionError{Tag: k}
		}
		out[i] = v
	}
	*s = out
	return nil
}

// SentimentLabel represents the three polarity classes.
type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Negative SentimentLabel = "negative"
	Neutral  SentimentLabel = "neutral"
)

// LabelFor maps the sign of score to a label. For a single word the score is
// one of -1, 0 or 1; for text it is the signed sum over recognized words.
func LabelFor(score int) SentimentLabel {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// LexiconEntry is one row of the lexicon.
type LexiconEntry struct {
	Word      string        // Normalized key
	Emotions  EmotionScores // Binary presence per tag
	Sentiment int           // -1, 0 or 1

	// Sentiment class flags, passed through from the source as-is.
	IsPositive bool
	IsNegative bool
	IsNeutral  bool
}

// WordResult is the per-word entry of a TextAnalysisResult.
type WordResult struct {
	Word      string         `json:"word"`
	Sentiment SentimentLabel `json:"sentiment"`
	Emotions  EmotionScores  `json:"emotions"`
}

// TextAnalysisResult summarizes the annotations of every token in a text.
type TextAnalysisResult struct {
	Text           string         `json:"text"`
	WordsFound     int            `json:"words_found"`
	TotalWords     int            `json:"total_words"`
	SentimentScore int            `json:"sentiment_score"`
	SentimentLabel SentimentLabel `json:"sentiment_label"`
	Emotions       EmotionScores  `json:"emotions"`
	WordResults    []WordResult   `json:"word_results"`

	// StopWords counts tokens matched by the stop-word list, when enabled.
	StopWords int `json:"stop_words,omitempty"`
}

// Coverage returns the share of tokens found in the lexicon.
func (r TextAnalysisResult) Coverage() float64 {
	if r.TotalWords == 0 {
		return 0
	}
	return float64(r.WordsFound) / float64(r.TotalWords)
}

// String returns a one-line summary.
func (r TextAnalysisResult) String() string {
	return fmt.Sprintf("%s (score %d, %d/%d words)", r.SentimentLabel, r.SentimentScore, r.WordsFound, r.TotalWords)
}
