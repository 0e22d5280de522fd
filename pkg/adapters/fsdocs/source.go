// Package fsdocs implements the document ports on top of an afero filesystem.
package fsdocs

import (
	"fmt"

	"github.com/spf13/afero"
)

// Source implements ports.DocumentSource.
// Paths are resolved against the filesystem root; NewOS anchors it at a project directory.
type Source struct {
	fs   afero.Fs
	root string
}

// New creates a Source over an arbitrary afero filesystem.
// Sources created this way cannot be watched.
func New(fsys afero.Fs) *Source {
	return &Source{fs: fsys}
}

// NewOS creates a Source reading from the project directory root on the OS filesystem.
func NewOS(root string) *Source {
	return &Source{
		fs:   afero.NewBasePathFs(afero.NewOsFs(), root),
		root: root,
	}
}

// Fs exposes the underlying filesystem so the graph loader and config can share it.
func (s *Source) Fs() afero.Fs {
	return s.fs
}

// Exists reports whether path is present and is not a directory.
func (s *Source) Exists(path string) (bool, error) {
	ok, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if !ok {
		return false, nil
	}
	dir, err := afero.IsDir(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return !dir, nil
}

// ReadText returns the document contents as a string.
func (s *Source) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
