package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrTooFewInputs is returned by LoadPair when fewer than two paths are given.
	ErrTooFewInputs = errors.New("two input files are required")
	// ErrNotFound wraps a missing input path.
	ErrNotFound = errors.New("file not found")
	// ErrUnreadable wraps any other failure to read an input.
	ErrUnreadable = errors.New("file unreadable")
)

// Document is one input loaded fully into memory.
type Document struct {
	Path string
	Data []byte
}

// Len returns the uncompressed size of the document in bytes.
func (d *Document) Len() int {
	return len(d.Data)
}

// Load reads the file at path in full.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("input: %q: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("input: %q: %w: %w", path, ErrUnreadable, err)
	}
	return &Document{Path: path, Data: data}, nil
}

// LoadPair loads paths[0] as X and paths[1] as Y. Paths beyond the second are
// not read; they are returned as ignored.
func LoadPair(paths []string) (x, y *Document, ignored []string, err error) {
	if len(paths) < 2 {
		return nil, nil, nil, fmt.Errorf("input: %w, got %d", ErrTooFewInputs, len(paths))
	}
	if x, err = Load(paths[0]); err != nil {
		return nil, nil, nil, err
	}
	if y, err = Load(paths[1]); err != nil {
		return nil, nil, nil, err
	}
	if len(paths) > 2 {
		ignored = paths[2:]
	}
	return x, y, ignored, nil
}
