// Package pipeline runs extraction, annotation and output in sequence.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/f3rmion/pinyingen/internal/annotate"
	"github.com/f3rmion/pinyingen/internal/config"
	"github.com/f3rmion/pinyingen/internal/edn"
	"github.com/f3rmion/pinyingen/internal/extract"
	"github.com/f3rmion/pinyingen/internal/hanzi"
	"github.com/f3rmion/pinyingen/internal/logging"
	"github.com/f3rmion/pinyingen/internal/store"
)

// ErrNoCharacters is returned when nothing could be extracted. No output
// is written in that case.
var ErrNoCharacters = errors.New("no characters found")

// Result describes a completed run.
type Result struct {
	Characters   []string
	Mapping      *hanzi.Mapping
	Output       string
	SampleOutput string
	SampleSize   int
	SQLite       string
}

// Run generates the pinyin files described by cfg using lookup.
func Run(ctx context.Context, cfg *config.Config, lookup annotate.Lookup, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.Info("extracting characters", "source", cfg.Source, "vector", cfg.Vector)
	chars, err := extract.LoadFile(cfg.Source, cfg.Vector)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		if errors.Is(err, extract.ErrInputNotFound) ||
			errors.Is(err, extract.ErrNotFound) ||
			errors.Is(err, extract.ErrEmpty) {
			return nil, fmt.Errorf("%w: %w", ErrNoCharacters, err)
		}
		return nil, err
	}
	logger.Info("found characters", "count", len(chars))

	logger.Info("generating pinyin mappings")
	annotator := annotate.New(lookup,
		annotate.WithOverrides(cfg.Overrides),
		annotate.WithLogger(logger.With("component", "annotate")),
	)
	mapping := annotator.Annotate(chars)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := edn.WriteFile(cfg.Output, edn.FullTemplate, mapping); err != nil {
		return nil, err
	}
	logger.Info("wrote pinyin dictionary", "entries", mapping.Len(), "path", cfg.Output)

	sample := mapping.Head(cfg.SampleSize)
	if err := edn.WriteFile(cfg.SampleOutput, edn.SampleTemplate, sample); err != nil {
		return nil, err
	}
	logger.Info("wrote sample file", "entries", sample.Len(), "path", cfg.SampleOutput)

	if cfg.SQLite != "" {
		if err := store.Save(ctx, cfg.SQLite, mapping); err != nil {
			return nil, fmt.Errorf("exporting to sqlite: %w", err)
		}
		logger.Info("exported sqlite database", "path", cfg.SQLite)
	}

	return &Result{
		Characters:   chars,
		Mapping:      mapping,
		Output:       cfg.Output,
		SampleOutput: cfg.SampleOutput,
		SampleSize:   sample.Len(),
		SQLite:       cfg.SQLite,
	}, nil
}
