package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/tsawler/sezim"
)

type wordOutput struct {
	Word           string               `json:"word"`
	Found          bool                 `json:"found"`
	Sentiment      int                  `json:"sentiment"`
	SentimentLabel sezim.SentimentLabel `json:"sentiment_label"`
	Emotions       sezim.EmotionScores  `json:"emotions"`
	EmotionCount   int                  `json:"emotion_count"`
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	wordMode := flag.Bool("word", false, "annotate each argument as a single word")
	linesMode := flag.Bool("lines", false, "analyze every stdin line as a separate text")
	sentenceMode := flag.Bool("sentences", false, "break the text down by sentence")
	printMetrics := flag.Bool("metrics", false, "print collected metrics to stderr on exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("sezim", sezim.Version)
		return
	}

	cfg, err := sezim.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := sezim.NewLogger(cfg.Logging, os.Stderr)
	slog.SetDefault(logger)

	var (
		registry *prometheus.Registry
		metrics  *sezim.Metrics
	)
	if cfg.Metrics.Enabled || *printMetrics {
		registry = prometheus.NewRegistry()
		metrics = sezim.NewMetrics(registry)
	}

	opts := append(cfg.Options(), sezim.WithLogger(logger), sezim.WithMetrics(metrics))
	lex := sezim.NewLexicon(cfg.Lexicon.Path, opts...)
	analyzer, err := sezim.NewAnalyzer(lex, opts...)
	if err != nil {
		slog.Error("failed to load lexicon", "path", cfg.Lexicon.Path, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	switch {
	case *wordMode:
		err = annotateWords(enc, analyzer.Annotator(), flag.Args())
	case *linesMode:
		err = analyzeLines(ctx, enc, analyzer, os.Stdin)
	default:
		var text string
		text, err = readText(flag.Args(), os.Stdin)
		if err == nil {
			if *sentenceMode {
				err = enc.Encode(analyzer.AnalyzeSentences(text))
			} else {
				err = enc.Encode(analyzer.Analyze(text))
			}
		}
	}
	if err != nil {
		slog.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	if *printMetrics {
		if err := writeMetrics(os.Stderr, registry); err != nil {
			slog.Error("failed to write metrics", "error", err)
		}
	}
}

func annotateWords(enc *json.Encoder, annotator *sezim.Annotator, words []string) error {
	out := make([]wordOutput, 0, len(words))
	for _, w := range words {
		a := annotator.Annotate(w)
		out = append(out, wordOutput{
			Word:           a.Word,
			Found:          a.Found,
			Sentiment:      a.Sentiment(),
			SentimentLabel: a.SentimentLabel(),
			Emotions:       a.Scores(),
			EmotionCount:   a.EmotionCount(),
		})
	}
	return enc.Encode(out)
}

func analyzeLines(ctx context.Context, enc *json.Encoder, analyzer *sezim.Analyzer, r io.Reader) error {
	var texts []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		texts = append(texts, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	results, err := analyzer.AnalyzeBatch(ctx, texts)
	if err != nil {
		return err
	}
	return enc.Encode(results)
}

func readText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
