package sezim

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultLexiconPath is where the bundled lexicon is expected when no path is
// configured.
const DefaultLexiconPath = "data/sezim_emolex.csv"

// Lexicon is a handle to a lexicon resource that is read on first use and
// cached for the lifetime of the handle. Load is safe for concurrent use; the
// table is built at most once and a failed load is not retried.
type Lexicon struct {
	name    string
	open    func() (fs.File, error)
	logger  *slog.Logger
	metrics *Metrics

	once  sync.Once
	table *Table
	err   error
}

// NewLexicon returns a handle for the lexicon file at path.
func NewLexicon(path string, opts ...Option) *Lexicon {
	return newLexicon(path, func() (fs.File, error) { return os.Open(path) }, opts)
}

// NewLexiconFS returns a handle for the lexicon file name inside fsys.
func NewLexiconFS(fsys fs.FS, name string, opts ...Option) *Lexicon {
	return newLexicon(name, func() (fs.File, error) { return fsys.Open(name) }, opts)
}

func newLexicon(name string, open func() (fs.File, error), opts []Option) *Lexicon {
	o := applyOptions("lexicon", opts)
	return &Lexicon{
		name:    name,
		open:    open,
		logger:  o.Logger.With("source", name),
		metrics: o.Metrics,
	}
}

// StaticLexicon wraps an already-built table, for callers that construct the
// lexicon themselves.
func StaticLexicon(table *Table) *Lexicon {
	l := &Lexicon{name: table.Source(), table: table}
	l.once.Do(func() {})
	return l
}

// Load returns the table, reading the resource on the first call only.
func (l *Lexicon) Load() (*Table, error) {
	l.once.Do(func() {
		l.table, l.err = l.read()
	})
	return l.table, l.err
}

// Name identifies the resource behind the handle.
func (l *Lexicon) Name() string {
	return l.name
}

func (l *Lexicon) read() (*Table, error) {
	start := time.Now()

	f, err := l.open()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = &ResourceMissingError{Path: l.name, Err: err}
		} else {
			err = fmt.Errorf("opening lexicon %s: %w", l.name, err)
		}
		l.logger.Error("lexicon load failed", "error", err)
		return nil, err
	}
	defer f.Close()

	table, err := ReadTable(f, l.name)
	if err != nil {
		l.logger.Error("lexicon load failed", "error", err)
		return nil, err
	}

	elapsed := time.Since(start)
	if table.Duplicates() > 0 {
		l.logger.Debug("duplicate lexicon rows skipped", "duplicates", table.Duplicates())
	}
	l.logger.Info("lexicon loaded", "entries", table.Len(), "duration", elapsed)
	l.metrics.observeLoad(table.Len(), elapsed)
	return table, nil
}

var (
	defaultLexiconOnce sync.Once
	defaultLexicon     *Lexicon
)

// DefaultLexicon returns the process-wide handle for the configured lexicon
// path: SEZIM_LEXICON_PATH when set, otherwise DefaultLexiconPath.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		path := DefaultLexiconPath
		if v := os.Getenv(envLexiconPath); v != "" {
			path = v
		}
		defaultLexicon = NewLexicon(filepath.Clean(path))
	})
	return defaultLexicon
}
