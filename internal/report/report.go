// Package report runs the load, build and export pipeline.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/verte-zerg/letterdist/internal/export"
	"github.com/verte-zerg/letterdist/internal/model"
	"github.com/verte-zerg/letterdist/internal/stats"
	"github.com/verte-zerg/letterdist/internal/wordlist"
)

// Default input settings.
const (
	DefaultInput  = "english_words.csv"
	DefaultColumn = "english_words"
)

// Recorder persists a completed run.
type Recorder interface {
	InsertRun(ctx context.Context, run model.RunSummary, dists model.Distributions) (int64, error)
}

// Options configures a pipeline run.
type Options struct {
	Config   model.ReportConfig
	Recorder Recorder
	Now      func() time.Time
}

// Result describes a finished run.
type Result struct {
	Words         int
	Distributions model.Distributions
	Outcome       export.Outcome
	RunID         int64
}

// DefaultConfig returns the fixed settings used when nothing is configured.
func DefaultConfig() model.ReportConfig {
	return model.ReportConfig{
		Input:          DefaultInput,
		Column:         DefaultColumn,
		Delimiter:      ',',
		Output:         export.DefaultPath,
		Format:         string(export.FormatCSV),
		MaxOccurrences: model.DefaultMaxOccurrences,
	}
}

// Load reads the word list and builds every letter distribution.
func Load(cfg model.ReportConfig) ([]string, model.Distributions, error) {
	words, err := wordlist.LoadColumn(cfg.Input, cfg.Column, wordlist.WithDelimiter(cfg.Delimiter))
	if err != nil {
		return nil, nil, err
	}
	return words, stats.BuildDistributions(words), nil
}

// Generate loads the word list, builds distributions and exports the report.
// Loader errors are returned before any output is attempted; export problems
// are logged and reported in Result.Outcome.
func Generate(ctx context.Context, opts Options, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return Result{}, err
	}

	words, dists, err := Load(cfg)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("word list loaded", "path", cfg.Input, "column", cfg.Column, "words", len(words))

	exp := &export.Exporter{
		Path:           cfg.Output,
		Format:         format,
		MaxOccurrences: cfg.MaxOccurrences,
		Logger:         logger,
	}
	result := Result{
		Words:         len(words),
		Distributions: dists,
		Outcome:       exp.Export(dists),
	}

	if opts.Recorder != nil && !dists.Empty() {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		id, err := opts.Recorder.InsertRun(ctx, model.RunSummary{
			CreatedAt: now().UTC(),
			Input:     cfg.Input,
			Column:    cfg.Column,
			Words:     len(words),
			Output:    cfg.Output,
			Format:    string(format),
			Outcome:   result.Outcome.String(),
		}, dists)
		if err != nil {
			logger.Warn("failed to record run", "err", err)
		} else {
			result.RunID = id
			logger.Debug("run recorded", "id", id)
		}
	}
	return result, nil
}

// Validate checks settings that cannot be caught by the loader or exporter.
func Validate(cfg model.ReportConfig) error {
	if cfg.Input == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if cfg.Column == "" {
		return fmt.Errorf("column name must not be empty")
	}
	if cfg.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if cfg.MaxOccurrences < 0 || cfg.MaxOccurrences > model.MaxOccurrencesLimit {
		return fmt.Errorf("max count must be between 0 and %d", model.MaxOccurrencesLimit)
	}
	if _, err := export.ParseFormat(cfg.Format); err != nil {
		return err
	}
	return nil
}
