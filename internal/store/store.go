package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrNotFound reports that a named schema document does not exist.
var ErrNotFound = errors.New("schema document not found")

// Store abstracts the backing schema repository.
type Store interface {
	// Read returns the raw bytes of the named document, or an error
	// wrapping ErrNotFound when the document does not exist.
	Read(name string) ([]byte, error)

	// Write persists the document atomically.
	Write(name string, data []byte) error
}

// Dir is a Store backed by a directory of schema files.
type Dir struct {
	root string
}

// NewDir opens a directory-backed store rooted at root.
func NewDir(root string) (*Dir, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("schema root %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("schema root %s is not a directory", root)
	}

	return &Dir{root: root}, nil
}

// Root returns the store's root directory.
func (d *Dir) Root() string {
	return d.root
}

// Read returns the named document's bytes.
func (d *Dir) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(d.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}

		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return data, nil
}

// Write persists the document atomically: the content is written to a
// temporary file in the target directory and renamed over the
// destination, so an interrupted run never leaves a half-written
// document.
func (d *Dir) Write(name string, data []byte) error {
	path := d.path(name)

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()

	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmp.Name())

		if writeErr != nil {
			return fmt.Errorf("writing %s: %w", name, writeErr)
		}

		return fmt.Errorf("writing %s: %w", name, closeErr)
	}

	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return nil
}

// List returns the names of documents under the root matching the
// doublestar pattern (e.g. "**/*.schema.json"), sorted.
func (d *Dir) List(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(d.root), pattern)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", pattern, err)
	}

	sort.Strings(matches)

	return matches, nil
}

func (d *Dir) path(name string) string {
	return filepath.Join(d.root, filepath.FromSlash(name))
}
