package config

import (
	"fmt"
	"log/slog"
)

// Source is raw configuration text and the directory it was read from.
// Dir anchors relative imports; it is empty for data that has no file.
type Source struct {
	Data []byte
	Dir  string
}

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter selects a section within the document using dots as the
// separator, the same way section headers do:
//   - "services.api" decodes the [services.api] section
//   - "" (empty path) decodes the entire document
type Parser interface {
	Parse(src Source, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() (Source, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		src, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(src, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		if defaulter, ok := any(target).(Defaulter); ok && defaulter.SetDefaults() {
			slog.Info("defaults applied", slog.String("path", path))
		}

		if validator, ok := any(target).(Validator); ok {
			err := validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		slog.Debug("configuration loaded", slog.String("path", path), slog.String("dir", src.Dir))

		return target, nil
	}
}
