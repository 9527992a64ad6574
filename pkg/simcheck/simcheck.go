// Package simcheck provides the high-level document-checking API: read two
// documents, score them with the TF-IDF cosine pipeline, and optionally
// record the run in the check history.
package simcheck

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/liwenhao/simcheck/internal/docio"
	"github.com/liwenhao/simcheck/internal/history"
	"github.com/liwenhao/simcheck/pkg/core"
)

// Config represents checker configuration
type Config struct {
	// HistoryPath is the SQLite database recording completed checks.
	// Empty disables history recording entirely.
	HistoryPath string
}

// DefaultConfig returns a configuration with history recording disabled.
func DefaultConfig() Config {
	return Config{}
}

// Option is a functional option for configuring the Checker.
type Option func(*Checker)

// WithLogger configures the Checker with a logger. The default discards
// all messages.
func WithLogger(logger core.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Checker scores document pairs and records the results.
type Checker struct {
	config  Config
	logger  core.Logger
	history *history.Store
}

// Result describes one completed comparison.
type Result struct {
	ID              string
	OriginalPath    string
	CandidatePath   string
	Score           float64
	OriginalTokens  int
	CandidateTokens int
	VocabSize       int
}

// Open creates a Checker, opening the history store when one is
// configured.
func Open(config Config, opts ...Option) (*Checker, error) {
	c := &Checker{config: config, logger: core.NopLogger()}
	for _, opt := range opts {
		opt(c)
	}

	if config.HistoryPath != "" {
		store, err := history.Open(config.HistoryPath, c.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open history store: %w", err)
		}
		c.history = store
	}

	return c, nil
}

// CheckFiles reads both documents and scores them. Read failures surface
// before any scoring happens, so the pipeline never sees unreadable input.
func (c *Checker) CheckFiles(ctx context.Context, originalPath, candidatePath string) (Result, error) {
	original, err := docio.ReadDocument(originalPath)
	if err != nil {
		return Result{}, err
	}
	candidate, err := docio.ReadDocument(candidatePath)
	if err != nil {
		return Result{}, err
	}

	return c.check(ctx, original, candidate, originalPath, candidatePath)
}

// CheckTexts scores two in-memory documents.
func (c *Checker) CheckTexts(ctx context.Context, original, candidate string) (Result, error) {
	return c.check(ctx, original, candidate, "", "")
}

func (c *Checker) check(ctx context.Context, original, candidate, originalPath, candidatePath string) (Result, error) {
	cmp := core.Compare(original, candidate)

	res := Result{
		ID:              uuid.NewString(),
		OriginalPath:    originalPath,
		CandidatePath:   candidatePath,
		Score:           cmp.Score,
		OriginalTokens:  cmp.OriginalTokens,
		CandidateTokens: cmp.CandidateTokens,
		VocabSize:       cmp.VocabSize,
	}

	c.logger.Debug("documents scored",
		"score", cmp.Score,
		"original_tokens", cmp.OriginalTokens,
		"candidate_tokens", cmp.CandidateTokens,
		"vocab_size", cmp.VocabSize,
	)

	if c.history != nil {
		rec := &history.Record{
			ID:              res.ID,
			OriginalPath:    originalPath,
			CandidatePath:   candidatePath,
			Score:           cmp.Score,
			OriginalTokens:  cmp.OriginalTokens,
			CandidateTokens: cmp.CandidateTokens,
			VocabSize:       cmp.VocabSize,
		}
		if err := c.history.Record(ctx, rec); err != nil {
			return res, fmt.Errorf("failed to record check: %w", err)
		}
	}

	return res, nil
}

// History returns the underlying history store, or nil when recording is
// disabled.
func (c *Checker) History() *history.Store {
	return c.history
}

// Close releases the history store, if any.
func (c *Checker) Close() error {
	if c.history != nil {
		return c.history.Close()
	}
	return nil
}
