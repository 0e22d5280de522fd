// Package cli implements the gddgraph commands on top of the Engine.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/aretw0/gddgraph/internal/config"
	"github.com/aretw0/gddgraph/internal/presentation/tui"
	"github.com/aretw0/gddgraph/pkg/ports"
)

// ErrCriticalFindings is returned by validate when a critical category is non-empty.
// The findings have already been printed, so callers only need the exit status.
var ErrCriticalFindings = errors.New("critical findings")

// Options contains the global flags shared by every command.
type Options struct {
	RepoPath   string
	MapPath    string // overrides the configured map when set
	ConfigPath string
	Debug      bool
	NoColor    bool

	Stdout io.Writer
	Stderr io.Writer
	// Watcher replaces the filesystem watcher used by validate --watch.
	Watcher ports.Watchable
}

// App holds what one command invocation needs.
type App struct {
	opts   Options
	fs     afero.Fs
	cfg    *config.Config
	logger *slog.Logger
	styles *tui.Styles
	out    io.Writer
}

// NewApp loads the project configuration and prepares output.
func NewApp(opts Options) (*App, error) {
	if opts.RepoPath == "" {
		opts.RepoPath = "."
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, opts.RepoPath, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	return &App{
		opts:   opts,
		fs:     fs,
		cfg:    cfg,
		logger: createLogger(opts.Stderr, opts.Debug),
		styles: tui.NewStyles(opts.Stdout, opts.NoColor),
		out:    opts.Stdout,
	}, nil
}

// Config returns the effective configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Silent reports whether err was already presented to the user.
func Silent(err error) bool {
	return errors.Is(err, ErrCriticalFindings)
}
