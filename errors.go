package sezim

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrResourceMissing   = errors.New("lexicon resource not found")
	ErrMalformedResource = errors.New("malformed lexicon resource")
	ErrUnknownEmotion    = errors.New("unknown emotion")
)

// ResourceMissingError reports that the lexicon file could not be located.
type ResourceMissingError struct {
	Path string
	Err  error
}

func (e *ResourceMissingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrResourceMissing, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", ErrResourceMissing, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying filesystem error.
func (e *ResourceMissingError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrResourceMissing}
	}
	return []error{ErrResourceMissing, e.Err}
}

// MalformedResourceError reports a missing column or a value that cannot be
// coerced to the expected integer range. Line is 1-based and counts the header;
// it is zero for header-level problems.
type MalformedResourceError struct {
	Source string
	Line   int
	Column string
	Reason string
}

func (e *MalformedResourceError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedResource.Error())
	if e.Source != "" {
		b.WriteString(": ")
		b.WriteString(e.Source)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ": column %q", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

func (e *MalformedResourceError) Unwrap() error {
	return ErrMalformedResource
}

// UnknownEmotionError is returned when a caller names a tag outside the fixed
// emotion set.
type UnknownEmotionError struct {
	Tag string
}

func (e *UnknownEmotionError) Error() string {
	names := make([]string, len(Emotions))
	for i, emo := range Emotions {
		names[i] = string(emo)
	}
	return fmt.Sprintf("%s: %q (valid emotions: %s)", ErrUnknownEmotion, e.Tag, strings.Join(names, ", "))
}

func (e *UnknownEmotionError) Unwrap() error {
	return ErrUnknownEmotion
}
