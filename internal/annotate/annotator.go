// Package annotate attaches pinyin readings to extracted characters.
package annotate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/f3rmion/pinyingen/internal/hanzi"
	"github.com/f3rmion/pinyingen/internal/logging"
)

// ProgressInterval is how often Annotate logs progress.
const ProgressInterval = 100

// Lookup returns every reading of a character. An unknown character
// yields an empty result, not an error.
type Lookup interface {
	Readings(char string) ([]string, error)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(char string) ([]string, error)

// Readings calls f.
func (f LookupFunc) Readings(char string) ([]string, error) {
	return f(char)
}

// Chain tries each lookup in order and returns the first non-empty result.
// If none answers, the last error seen (if any) is returned.
func Chain(lookups ...Lookup) Lookup {
	return LookupFunc(func(char string) ([]string, error) {
		var lastErr error
		for _, l := range lookups {
			readings, err := l.Readings(char)
			if err != nil {
				lastErr = err
				continue
			}
			if len(readings) > 0 {
				return readings, nil
			}
		}
		return nil, lastErr
	})
}

// Annotator builds a character → pinyin mapping.
type Annotator struct {
	lookup    Lookup
	overrides map[string]string
	logger    *slog.Logger
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithOverrides sets fixed readings that bypass the lookup.
func WithOverrides(overrides map[string]string) Option {
	return func(a *Annotator) {
		a.overrides = overrides
	}
}

// WithLogger sets the logger for progress and lookup failures.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an annotator backed by lookup.
func New(lookup Lookup, opts ...Option) *Annotator {
	a := &Annotator{
		lookup: lookup,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Pinyin returns the readings of char joined with "/", or "?" when the
// lookup fails or returns nothing.
func (a *Annotator) Pinyin(char string) string {
	if p, ok := a.overrides[char]; ok {
		return p
	}

	readings, err := a.readings(char)
	if err != nil {
		a.logger.Warn("pinyin lookup failed", "char", char, "error", err)
		return hanzi.UnknownPinyin
	}
	if len(readings) == 0 {
		a.logger.Debug("no pinyin found", "char", char)
		return hanzi.UnknownPinyin
	}
	return hanzi.JoinReadings(readings)
}

// readings calls the lookup, turning a panic into an error.
func (a *Annotator) readings(char string) (readings []string, err error) {
	if a.lookup == nil {
		return nil, errors.New("no lookup configured")
	}
	defer func() {
		if r := recover(); r != nil {
			readings = nil
			err = fmt.Errorf("lookup panicked: %v", r)
		}
	}()
	return a.lookup.Readings(char)
}

// Annotate looks up every character in order. Duplicates keep the
// position of their first occurrence.
func (a *Annotator) Annotate(chars []string) *hanzi.Mapping {
	m := hanzi.NewMapping()
	for i, char := range chars {
		if (i+1)%ProgressInterval == 0 {
			a.logger.Info(fmt.Sprintf("Processing character %d/%d: %s", i+1, len(chars), char))
		}
		if _, done := m.Get(char); done {
			continue
		}
		m.Set(char, a.Pinyin(char))
	}
	return m
}
