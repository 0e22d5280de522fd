package observability

import (
	"log/slog"

	"github.com/aretw0/gddgraph/pkg/domain"
)

// LogHooks traces resolutions and validation passes at debug level.
func LogHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnResolve: func(e *domain.ResolveEvent) {
			if e.Err != nil {
				logger.Debug("Resolve failed", "root", e.Root, "err", e.Err)
				return
			}
			logger.Debug("Resolved", "root", e.Root, "chain", e.ChainLength, "docs", e.DocCount)
		},
		OnValidate: func(e *domain.ValidateEvent) {
			if e.Issues == nil {
				return
			}
			logger.Debug("Validated",
				"nodes", e.Nodes,
				"critical", e.Issues.CriticalCount(),
				"warnings", e.Issues.WarningCount(),
			)
		},
	}
}
