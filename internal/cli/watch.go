package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/gddgraph/pkg/adapters/fsdocs"
)

// settleDelay lets editors finish writing before the graph is reloaded.
const settleDelay = 100 * time.Millisecond

// RunWatch validates the project, then again after every change to the graph
// source or a document, until ctx is cancelled. Each pass reloads the graph.
func (a *App) RunWatch(ctx context.Context, v ValidateOptions) error {
	watcher := a.opts.Watcher
	if watcher == nil {
		absPath, err := filepath.Abs(a.opts.RepoPath)
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
		watcher = fsdocs.NewOS(absPath)
	}

	events, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	ignored := a.outputFiles(v)
	a.logger.Info("Starting Watcher", "path", a.opts.RepoPath)
	for {
		if err := a.validateOnce(v); err != nil && !errors.Is(err, ErrCriticalFindings) {
			a.logger.Error("Validation failed", "err", err)
			fmt.Fprintln(a.opts.Stderr, a.styles.Critical(err.Error()))
		}
		if !v.JSON {
			a.printSystemMessage("Waiting for changes...")
		}

		name, ok := a.nextChange(ctx, events, ignored)
		if !ok {
			a.logger.Info("Stopping watcher")
			return nil
		}
		a.logger.Info("Change detected, revalidating", "file", name)
		if !v.JSON {
			a.printSystemMessage("Change detected in '%s'.", name)
		}
		drain(ctx, events, settleDelay)
		if ctx.Err() != nil {
			return nil
		}
	}
}

// nextChange blocks until a file outside ignored changes.
// It returns false once ctx is done or the watcher stops.
func (a *App) nextChange(ctx context.Context, events <-chan string, ignored map[string]bool) (string, bool) {
	for {
		select {
		case <-ctx.Done():
			return "", false
		case name, ok := <-events:
			if !ok {
				return "", false
			}
			if ignored[a.relativeName(name)] {
				a.logger.Debug("Ignoring own output", "file", name)
				continue
			}
			return name, true
		}
	}
}

// outputFiles lists the project-relative files each pass writes itself.
func (a *App) outputFiles(v ValidateOptions) map[string]bool {
	files := map[string]bool{}
	for _, p := range []string{a.reportPath(v), a.metricsPath(v)} {
		if p != "" {
			files[a.relativeName(a.projectPath(p))] = true
		}
	}
	return files
}

// relativeName normalizes name to a slash-separated path relative to the project root.
func (a *App) relativeName(name string) string {
	if !filepath.IsAbs(name) {
		name = filepath.Join(a.opts.RepoPath, name)
	}
	root, err := filepath.Abs(a.opts.RepoPath)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(name))
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(name))
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

// drain waits for d and discards events that arrived meanwhile, so a burst
// of writes triggers a single pass.
func drain(ctx context.Context, events <-chan string, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case _, ok := <-events:
			if !ok {
				return
			}
		}
	}
}
