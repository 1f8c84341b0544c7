package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/0xalexb/srcfg/config"
	"github.com/0xalexb/srcfg/srcerr"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = srcerr.New(srcerr.KindIO, errors.New("path is a directory, not a file"))

// ErrFileNotFound is returned when a file or import target does not exist.
var ErrFileNotFound = srcerr.New(srcerr.KindFileNotFound, errors.New("file not found"))

// ErrRead is returned when an existing file cannot be read.
var ErrRead = srcerr.New(srcerr.KindIO, errors.New("unable to read file"))

// Fetcher implements config.DataFetcher for a single file.
// The file is read at construction time and the handle released immediately.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor that reads the file at fpath.
// The constructor form lets a DI container decide when the read happens.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("stat file %q: %w", cleanPath, ErrFileNotFound)
			}

			return nil, fmt.Errorf("stat file %q: %w: %w", cleanPath, ErrRead, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w: %w", cleanPath, ErrRead, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Dir returns the directory containing the file.
func (f *Fetcher) Dir() string {
	return filepath.Dir(f.filepath)
}

// Text returns the file contents as a string.
func (f *Fetcher) Text() string {
	return string(f.data)
}

// Fetch returns a copy of the cached contents along with the file's directory.
func (f *Fetcher) Fetch() (config.Source, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return config.Source{Data: result, Dir: f.Dir()}, nil
}
