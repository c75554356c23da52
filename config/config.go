package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// Errors identifying the pipeline stage that failed.
var (
	ErrFetch    = errors.New("reading data")
	ErrParse    = errors.New("parsing data")
	ErrValidate = errors.New("validating data")
)

// Parser decodes configuration data into a target structure.
//
// The path parameter selects a section within the data using colon (:) as the separator,
// for example "settings" or "appSettings:database". An empty path selects the whole document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher reads raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by targets that can check themselves after loading.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by targets that fill unset fields after parsing.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Load fetches data, parses the section at path into target, applies defaults and validates.
func Load[T any](target *T, path string, parser Parser, fetcher DataFetcher) (*T, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	err = parser.Parse(data, target, path)
	if err != nil {
		return nil, fmt.Errorf("%w at %q: %w", ErrParse, path, err)
	}

	if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
		slog.Debug("defaults applied", slog.String("path", path))
	}

	if validator, ok := any(target).(Validator); ok {
		err = validator.Validate()
		if err != nil {
			return nil, fmt.Errorf("%w at %q: %w", ErrValidate, path, err)
		}
	}

	return target, nil
}

// Provider returns an Fx-friendly constructor that calls Load with the container's Parser and DataFetcher.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		return Load(target, path, parser, fetcher)
	}
}
