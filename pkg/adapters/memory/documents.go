package memory

import (
	"fmt"
	"io/fs"
)

// Documents implements ports.DocumentSource over a map of path -> text.
type Documents struct {
	files map[string]string
	// Failures makes ReadText fail for the given paths even though they exist.
	Failures map[string]error
}

// NewDocuments creates a document source with the provided contents.
func NewDocuments(files map[string]string) *Documents {
	copied := make(map[string]string, len(files))
	for k, v := range files {
		copied[k] = v
	}
	return &Documents{files: copied, Failures: make(map[string]error)}
}

// Exists reports whether path was provided.
func (d *Documents) Exists(path string) (bool, error) {
	_, ok := d.files[path]
	return ok, nil
}

// ReadText returns the stored text or the configured failure.
func (d *Documents) ReadText(path string) (string, error) {
	if err, ok := d.Failures[path]; ok {
		return "", err
	}
	text, ok := d.files[path]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return text, nil
}
