package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the configured path points to a directory.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for a file on disk.
// The file is read once; settings are not reloaded when it changes.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor that reads the file at fpath.
// Returning a constructor lets an Fx container decide when the read happens.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return Open(fpath)
	}
}

// Open reads the file at fpath and returns a Fetcher holding its contents.
func Open(fpath string) (*Fetcher, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return &Fetcher{path: cleanPath, data: data}, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the data read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	return append([]byte(nil), f.data...), nil
}
