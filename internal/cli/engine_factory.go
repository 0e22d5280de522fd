package cli

import (
	"fmt"

	"github.com/aretw0/gddgraph"
	"github.com/aretw0/gddgraph/pkg/domain"
	"github.com/aretw0/gddgraph/pkg/observability"
)

// createEngine initializes an Engine from the configuration and global flags.
// metrics may be nil.
func (a *App) createEngine(metrics *observability.Metrics) (*gddgraph.Engine, error) {
	hooks := domain.Hooks{}
	if a.opts.Debug {
		hooks = observability.LogHooks(a.logger)
	}
	if metrics != nil {
		hooks = hooks.Merge(metrics.Hooks())
	}

	engine, err := gddgraph.New(a.opts.RepoPath,
		gddgraph.WithMapPath(a.mapPath()),
		gddgraph.WithLogger(a.logger),
		gddgraph.WithHooks(hooks),
		gddgraph.WithAgentsSection(a.cfg.Agents.Section),
		gddgraph.WithRoster(a.cfg.Agents.Roster...),
	)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}

// mapPath prefers the --map flag over the configured graph source.
func (a *App) mapPath() string {
	if a.opts.MapPath != "" {
		return a.opts.MapPath
	}
	return a.cfg.Map
}
