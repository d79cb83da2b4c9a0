package sezim

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// stopWordFilter recognizes tokens that the stop-word list for one language
// reduces to nothing. Tokens made only of digits or punctuation match as well.
type stopWordFilter struct {
	lang string
}

func newStopWordFilter(lang string) *stopWordFilter {
	return &stopWordFilter{lang: strings.ToLower(lang)}
}

func (f *stopWordFilter) match(token string) bool {
	if f == nil {
		return false
	}
	return strings.TrimSpace(stopwords.CleanString(token, f.lang, false)) == ""
}
