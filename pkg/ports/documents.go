package ports

import "context"

// DocumentSource is the filesystem capability consumed by validation and reporting.
// Paths are relative to the project root.
type DocumentSource interface {
	// Exists reports whether a document is present.
	Exists(path string) (bool, error)

	// ReadText returns the full document text.
	ReadText(path string) (string, error)
}

// Watchable defines an interface for sources that can notify about backend changes.
// This is used by the validate --watch mode.
type Watchable interface {
	// Watch returns a channel that receives the name of each changed file.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan string, error)
}
