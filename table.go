package sezim

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Column names of the lexicon resource.
const (
	colWord       = "word"
	colSentiment  = "sentiment"
	colIsPositive = "is_positive"
	colIsNegative = "is_negative"
	colIsNeutral  = "is_neutral"
)

const utf8BOM = "\ufeff"

// Table is the immutable in-memory lexicon, keyed by normalized word. It has
// no mutation path after construction and may be shared by any number of
// readers.
type Table struct {
	entries    map[string]LexiconEntry
	source     string
	duplicates int
}

// NewTable builds a table from entries. Keys are normalized; when two entries
// normalize to the same word the first one is kept.
func NewTable(entries []LexiconEntry) *Table {
	t := &Table{entries: make(map[string]LexiconEntry, len(entries))}
	for _, entry := range entries {
		t.insert(entry)
	}
	return t
}

func (t *Table) insert(entry LexiconEntry) {
	entry.Word = Normalize(entry.Word)
	if _, exists := t.entries[entry.Word]; exists {
		t.duplicates++
		return
	}
	t.entries[entry.Word] = entry
}

// Find returns the entry stored under word. The match is exact; callers are
// expected to pass a normalized word.
func (t *Table) Find(word string) (LexiconEntry, bool) {
	if t == nil {
		return LexiconEntry{}, false
	}
	entry, ok := t.entries[word]
	return entry, ok
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Words returns every key in sorted order.
func (t *Table) Words() []string {
	if t == nil {
		return nil
	}
	words := make([]string, 0, len(t.entries))
	for w := range t.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Source names the resource the table was read from, if any.
func (t *Table) Source() string {
	if t == nil {
		return ""
	}
	return t.source
}

// Duplicates returns how many rows were skipped because their word was
// already present.
func (t *Table) Duplicates() int {
	if t == nil {
		return 0
	}
	return t.duplicates
}

// columns maps each required column to its index in the header.
type columns struct {
	word       int
	sentiment  int
	isPositive int
	isNegative int
	isNeutral  int
	emotions   [numEmotions]int
}

func readHeader(header []string, source string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	lookup := func(name string) (int, error) {
		i, ok := index[name]
		if !ok {
			return 0, &MalformedResourceError{Source: source, Column: name, Reason: "required column missing"}
		}
		return i, nil
	}

	var (
		cols columns
		err  error
	)
	if cols.word, err = lookup(colWord); err != nil {
		return cols, err
	}
	if cols.sentiment, err = lookup(colSentiment); err != nil {
		return cols, err
	}
	if cols.isPositive, err = lookup(colIsPositive); err != nil {
		return cols, err
	}
	if cols.isNegative, err = lookup(colIsNegative); err != nil {
		return cols, err
	}
	if cols.isNeutral, err = lookup(colIsNeutral); err != nil {
		return cols, err
	}
	for i, emo := range Emotions {
		if cols.emotions[i], err = lookup(string(emo)); err != nil {
			return cols, err
		}
	}
	return cols, nil
}

// ReadTable parses a comma-separated lexicon with a header row. Every value in
// the flag and emotion columns must be 0 or 1 and every sentiment must be -1,
// 0 or 1; anything else is reported as a *MalformedResourceError.
func ReadTable(r io.Reader, source string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &MalformedResourceError{Source: source, Reason: "empty resource, header row missing"}
	}
	if err != nil {
		return nil, csvError(err, source)
	}
	cols, err := readHeader(header, source)
	if err != nil {
		return nil, err
	}

	t := &Table{entries: make(map[string]LexiconEntry), source: source}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err, source)
		}
		line, _ := reader.FieldPos(0)

		entry, err := parseRow(record, cols)
		if err != nil {
			var malformed *MalformedResourceError
			if errors.As(err, &malformed) {
				malformed.Source = source
				malformed.Line = line
			}
			return nil, err
		}
		t.insert(entry)
	}
	return t, nil
}

func parseRow(record []string, cols columns) (LexiconEntry, error) {
	var entry LexiconEntry

	entry.Word = Normalize(record[cols.word])
	if entry.Word == "" {
		return entry, &MalformedResourceError{Column: colWord, Reason: "empty word"}
	}

	sentiment, err := parseInt(record[cols.sentiment], colSentiment, -1, 1)
	if err != nil {
		return entry, err
	}
	entry.Sentiment = sentiment

	flags := []struct {
		col  int
		name string
		dst  *bool
	}{
		{cols.isPositive, colIsPositive, &entry.IsPositive},
		{cols.isNegative, colIsNegative, &entry.IsNegative},
		{cols.isNeutral, colIsNeutral, &entry.IsNeutral},
	}
	for _, f := range flags {
		v, err := parseInt(record[f.col], f.name, 0, 1)
		if err != nil {
			return entry, err
		}
		*f.dst = v == 1
	}

	for i, emo := range Emotions {
		v, err := parseInt(record[cols.emotions[i]], string(emo), 0, 1)
		if err != nil {
			return entry, err
		}
		entry.Emotions[i] = v
	}
	return entry, nil
}

func parseInt(raw, column string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &MalformedResourceError{Column: column, Reason: fmt.Sprintf("value %q is not an integer", raw)}
	}
	if v < lo || v > hi {
		return 0, &MalformedResourceError{Column: column, Reason: fmt.Sprintf("value %d outside [%d, %d]", v, lo, hi)}
	}
	return v, nil
}

func csvError(err error, source string) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &MalformedResourceError{Source: source, Line: parseErr.Line, Reason: parseErr.Err.Error()}
	}
	return fmt.Errorf("reading lexicon %s: %w", source, err)
}
