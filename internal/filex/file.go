// Package filex holds the local-filesystem side of downloads: resolving the
// download directory and staging bytes before they land under their final
// name.
package filex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidName = errors.New("invalid file name")

// EnsureDir creates dir (relative paths resolve against the working
// directory) and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// SafeName reduces a server-provided name to a single path element.
func SafeName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return base, nil
}

// Staged is a temporary file holding downloaded bytes. Commit moves it to
// its final name; Release drops whatever is left. Release is safe to call
// after Commit and more than once.
type Staged struct {
	tmp      string
	dest     string
	released bool
}

// Stage copies r into a temporary file inside dir, destined for dir/name.
func Stage(dir, name string, r io.Reader) (*Staged, error) {
	safe, err := SafeName(name)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write temp: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close temp: %w", err)
	}

	return &Staged{tmp: f.Name(), dest: filepath.Join(dir, safe)}, nil
}

// Path is the final destination.
func (s *Staged) Path() string {
	return s.dest
}

// Commit moves the staged bytes to the destination, replacing any file
// already there.
func (s *Staged) Commit() error {
	if s.released {
		return fmt.Errorf("commit %s: already released", s.dest)
	}
	if err := os.Rename(s.tmp, s.dest); err != nil {
		return fmt.Errorf("rename to %s: %w", s.dest, err)
	}
	return nil
}

// Release removes the temporary file if it still exists.
func (s *Staged) Release() error {
	if s.released {
		return nil
	}
	s.released = true
	if err := os.Remove(s.tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", s.tmp, err)
	}
	return nil
}
