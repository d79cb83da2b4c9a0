package sezim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AnalyzeBatch analyzes texts concurrently, at most WithWorkers at a time.
// Results are returned in input order. If ctx is cancelled before every text
// has been analyzed, the context's error is returned.
func (an *Analyzer) AnalyzeBatch(ctx context.Context, texts []string) ([]TextAnalysisResult, error) {
	results := make([]TextAnalysisResult, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(an.workers)

	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		i, text := i, text
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = an.Analyze(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	an.logger.Debug("batch analyzed", "texts", len(texts), "workers", an.workers)
	return results, nil
}
