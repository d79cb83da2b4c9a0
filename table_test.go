package sezim

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "testdata/lexicon.csv"

const header = "word,anger,anticipation,disgust,fear,joy,sadness,surprise,trust,sentiment,is_positive,is_negative,is_neutral\n"

// loadFixture reads the test lexicon from testdata.
func loadFixture(t *testing.T) *Table {
	t.Helper()
	f, err := os.Open(fixturePath)
	require.NoError(t, err)
	defer f.Close()

	table, err := ReadTable(f, fixturePath)
	require.NoError(t, err)
	return table
}

func TestReadTableFixture(t *testing.T) {
	table := loadFixture(t)

	assert.Equal(t, 10, table.Len())
	assert.Equal(t, 1, table.Duplicates())
	assert.Equal(t, fixturePath, table.Source())

	entry, ok := table.Find("абайсыз")
	require.True(t, ok)
	assert.Equal(t, -1, entry.Sentiment)
	assert.Equal(t, 1, entry.Emotions.Get(Sadness))
	assert.Equal(t, 1, entry.Emotions.Sum())
	assert.True(t, entry.IsNegative)
	assert.False(t, entry.IsPositive)
	assert.False(t, entry.IsNeutral)
}

func TestReadTableFirstDuplicateWins(t *testing.T) {
	table := loadFixture(t)

	entry, ok := table.Find("абайлау")
	require.True(t, ok)
	assert.Equal(t, 0, entry.Sentiment)
	assert.Equal(t, 0, entry.Emotions.Sum())
	assert.True(t, entry.IsNeutral)
}

func TestReadTableNormalizesKeys(t *testing.T) {
	table := loadFixture(t)

	_, ok := table.Find("іңкәр")
	assert.True(t, ok)
	_, ok = table.Find("Іңкәр")
	assert.False(t, ok, "Find is an exact match on the normalized key")
}

func TestReadTableWordsSorted(t *testing.T) {
	table := NewTable([]LexiconEntry{{Word: "ашу"}, {Word: "абзац"}, {Word: "сенім"}})
	assert.Equal(t, []string{"абзац", "ашу", "сенім"}, table.Words())
}

func TestReadTableBOMAndColumnOrder(t *testing.T) {
	data := "\ufeffSentiment,Word,trust,surprise,sadness,joy,fear,disgust,anticipation,anger,is_neutral,is_negative,is_positive\n" +
		"1,сенім,1,0,0,0,0,0,0,0,0,0,1\n"

	table, err := ReadTable(strings.NewReader(data), "inline")
	require.NoError(t, err)

	entry, ok := table.Find("сенім")
	require.True(t, ok)
	assert.Equal(t, 1, entry.Sentiment)
	assert.Equal(t, 1, entry.Emotions.Get(Trust))
	assert.Equal(t, 0, entry.Emotions.Get(Anger))
	assert.True(t, entry.IsPositive)
}

func TestReadTableMalformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		line   int
		column string
	}{
		{
			name:   "missing emotion column",
			data:   "word,anger,anticipation,disgust,fear,joy,sadness,surprise,sentiment,is_positive,is_negative,is_neutral\n",
			column: "trust",
		},
		{
			name:   "missing sentiment column",
			data:   "word,anger,anticipation,disgust,fear,joy,sadness,surprise,trust,is_positive,is_negative,is_neutral\n",
			column: "sentiment",
		},
		{
			name:   "non-numeric emotion",
			data:   header + "ашу,yes,0,1,0,0,0,0,0,-1,0,1,0\n",
			line:   2,
			column: "anger",
		},
		{
			name:   "empty flag",
			data:   header + "сенім,0,0,0,0,0,0,0,1,1,,0,0\n",
			line:   2,
			column: "is_positive",
		},
		{
			name:   "sentiment out of range",
			data:   header + "абзац,0,0,0,0,0,0,0,0,0,0,0,1\nқайғы,0,0,0,0,0,1,0,0,-2,0,1,0\n",
			line:   3,
			column: "sentiment",
		},
		{
			name:   "emotion out of range",
			data:   header + "қуаныш,0,0,0,0,2,0,0,1,1,1,0,0\n",
			line:   2,
			column: "joy",
		},
		{
			name:   "empty word",
			data:   header + " ,0,0,0,0,0,0,0,0,0,0,0,1\n",
			line:   2,
			column: "word",
		},
		{
			name: "ragged row",
			data: header + "ашу,1,0\n",
			line: 2,
		},
		{
			name: "empty resource",
			data: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ReadTable(strings.NewReader(tt.data), "inline.csv")
			require.Error(t, err)
			assert.Nil(t, table)
			assert.True(t, errors.Is(err, ErrMalformedResource))

			var malformed *MalformedResourceError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, "inline.csv", malformed.Source)
			assert.Equal(t, tt.line, malformed.Line)
			assert.Equal(t, tt.column, malformed.Column)
		})
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	_, ok := table.Find("ашу")
	assert.False(t, ok)
	assert.Zero(t, table.Len())
	assert.Nil(t, table.Words())
}
