package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrFetch wraps failures reading the document.
var ErrFetch = errors.New("reading settings")

// ErrParse wraps failures decoding the document.
var ErrParse = errors.New("parsing settings")

// ErrValidate wraps failures reported by a Validator.
var ErrValidate = errors.New("validating settings")

// Parser decodes data into target, starting at the colon-separated path.
// An empty path decodes the whole document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher returns the raw document.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by targets that can reject their own values.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by targets that fill unset fields.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns an Fx-friendly constructor that fetches, parses, defaults and validates target.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		err := Load(target, path, parser, fetcher)
		if err != nil {
			return nil, err
		}

		return target, nil
	}
}

// Load runs the fetch, parse, default and validate steps on target.
func Load(target any, path string, parser Parser, fetcher DataFetcher) error {
	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	err = parser.Parse(data, target, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	if defaulter, ok := target.(Defaulter); ok {
		if defaulter.SetDefaults() {
			slog.Info("defaults applied", slog.String("path", path))
		}
	}

	if validator, ok := target.(Validator); ok {
		err = validator.Validate()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidate, err)
		}
	}

	return nil
}
