package extract

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Document is an uploaded file awaiting a word count.
type Document struct {
	Name string
	Data []byte
}

// Result is the outcome for the document at the same index of the batch.
type Result struct {
	Words int
	Err   error
}

// Counter extracts and counts a batch of documents with bounded concurrency.
type Counter struct {
	workers  int
	maxBytes int64
	logger   *slog.Logger
}

// NewCounter builds a Counter; non-positive worker counts fall back to one and a
// non-positive text limit to DefaultMaxTextBytes.
func NewCounter(workers int, maxTextBytes int64, logger *slog.Logger) *Counter {
	if workers <= 0 {
		workers = 1
	}
	if maxTextBytes <= 0 {
		maxTextBytes = DefaultMaxTextBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Counter{workers: workers, maxBytes: maxTextBytes, logger: logger}
}

// Count returns one result per document. Per-document failures are reported in the
// result; only cancellation of ctx aborts the batch.
func (c *Counter) Count(ctx context.Context, docs []Document) ([]Result, error) {
	results := make([]Result, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := TextLimit(doc.Name, doc.Data, c.maxBytes)
			if err != nil {
				c.logger.Debug("document text extraction failed", "file", doc.Name, "error", err)
				results[i] = Result{Err: err}
				return nil
			}
			results[i] = Result{Words: CountWords(text)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
