package sezim

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmotion(t *testing.T) {
	for _, emo := range Emotions {
		got, err := ParseEmotion(string(emo))
		require.NoError(t, err)
		assert.Equal(t, emo, got)
	}

	_, err := ParseEmotion("love")
	assert.True(t, errors.Is(err, ErrUnknownEmotion))
	assert.Contains(t, err.Error(), `"love"`)
	assert.Contains(t, err.Error(), "anger, anticipation, disgust, fear, joy, sadness, surprise, trust")
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		score int
		want  SentimentLabel
	}{
		{-7, Negative},
		{-1, Negative},
		{0, Neutral},
		{1, Positive},
		{12, Positive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.score), "score %d", tt.score)
	}
}

func TestEmotionScores(t *testing.T) {
	var s EmotionScores
	s[emotionIndex(Fear)] = 1
	s[emotionIndex(Trust)] = 2

	assert.Equal(t, 1, s.Get(Fear))
	assert.Equal(t, 0, s.Get(Emotion("love")))
	assert.Equal(t, 3, s.Sum())
	assert.Equal(t, []Emotion{Fear, Trust}, s.Active())
	assert.Nil(t, EmotionScores{}.Active())

	s.add(s)
	assert.Equal(t, 4, s.Get(Trust))
}

func TestEmotionScoresJSON(t *testing.T) {
	var s EmotionScores
	require.NoError(t, json.Unmarshal([]byte(`{"joy":1,"trust":1}`), &s))
	assert.Equal(t, []Emotion{Joy, Trust}, s.Active())

	err := json.Unmarshal([]byte(`{"joy":1,"love":1}`), &s)
	var unknown *UnknownEmotionError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "love", unknown.Tag)
}

func TestErrorMessages(t *testing.T) {
	missing := &ResourceMissingError{Path: "data/sezim_emolex.csv"}
	assert.Equal(t, "lexicon resource not found: data/sezim_emolex.csv", missing.Error())
	assert.True(t, errors.Is(missing, ErrResourceMissing))

	malformed := &MalformedResourceError{Source: "x.csv", Line: 4, Column: "joy", Reason: "value 2 out of range [0, 1]"}
	assert.Equal(t, `malformed lexicon resource: x.csv: line 4: column "joy": value 2 out of range [0, 1]`, malformed.Error())

	header := &MalformedResourceError{Source: "x.csv", Column: "word", Reason: "missing column"}
	assert.Equal(t, `malformed lexicon resource: x.csv: column "word": missing column`, header.Error())
}
