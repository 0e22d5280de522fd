package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/gddgraph/internal/presentation/report"
	"github.com/aretw0/gddgraph/pkg/observability"
)

// ReportFromConfig is the --report value meaning "use the configured report path".
const ReportFromConfig = "config"

// ValidateOptions are the flags of the validate command.
type ValidateOptions struct {
	JSON        bool
	ReportPath  string
	MetricsPath string
	Watch       bool
}

// Resolve prints the dependency chain and documents of one node.
// Unknown nodes and cycles are returned as errors.
func (a *App) Resolve(name string, jsonOut bool) error {
	engine, err := a.createEngine(nil)
	if err != nil {
		return err
	}

	res, err := engine.Resolve(name)
	if err != nil {
		return err
	}

	if jsonOut {
		return a.printJSON(res)
	}
	a.printResolution(name, res)
	return nil
}

// Validate checks the graph once, or keeps checking it on changes when v.Watch is set.
func (a *App) Validate(ctx context.Context, v ValidateOptions) error {
	if v.Watch {
		return a.RunWatch(ctx, v)
	}
	return a.validateOnce(v)
}

func (a *App) validateOnce(v ValidateOptions) error {
	metricsPath := a.metricsPath(v)
	var metrics *observability.Metrics
	if metricsPath != "" {
		metrics = observability.NewMetrics()
	}

	engine, err := a.createEngine(metrics)
	if err != nil {
		return err
	}

	issues := engine.Validate()

	if v.JSON {
		if err := a.printJSON(validationJSON{
			Status:   report.Status(issues),
			Critical: issues.CriticalCount(),
			Warnings: issues.WarningCount(),
			Issues:   issues,
		}); err != nil {
			return err
		}
	} else {
		a.printIssues(issues, engine.AgentsSection())
	}

	if reportPath := a.reportPath(v); reportPath != "" {
		path := a.projectPath(reportPath)
		if err := a.writeFile(path, []byte(engine.Report(issues, time.Now()))); err != nil {
			return err
		}
		a.logger.Info("Report written", "path", path)
		if !v.JSON {
			a.printSystemMessage("Report written to '%s'.", path)
		}
	}

	if metrics != nil {
		path := a.projectPath(metricsPath)
		if err := a.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		if err := metrics.WriteTextfile(path); err != nil {
			return err
		}
		a.logger.Info("Metrics written", "path", path)
	}

	if issues.HasCritical() {
		return ErrCriticalFindings
	}
	return nil
}

// reportPath returns the report destination of v, or "" when no report is requested.
func (a *App) reportPath(v ValidateOptions) string {
	if v.ReportPath == ReportFromConfig {
		return a.cfg.Report
	}
	return v.ReportPath
}

// metricsPath returns the metrics destination of v, falling back to the configuration.
func (a *App) metricsPath(v ValidateOptions) string {
	if v.MetricsPath != "" {
		return v.MetricsPath
	}
	return a.cfg.Metrics
}

// Graph writes the Mermaid diagram to stdout, or to output when set.
func (a *App) Graph(output string) error {
	engine, err := a.createEngine(nil)
	if err != nil {
		return err
	}

	diagram := engine.Diagram()
	if output == "" {
		fmt.Fprint(a.out, diagram)
		return nil
	}
	return a.writeFile(a.projectPath(output), []byte(diagram))
}

// Report validates the graph and writes the markdown report.
// Without output it prints to stdout, rendered for the terminal when render is set.
// Critical findings do not fail the command: the report is the deliverable.
func (a *App) Report(output string, render bool) error {
	engine, err := a.createEngine(nil)
	if err != nil {
		return err
	}

	markdown := engine.Report(engine.Validate(), time.Now())
	if output != "" {
		return a.writeFile(a.projectPath(output), []byte(markdown))
	}

	if render {
		rendered, err := a.renderMarkdown(markdown)
		if err != nil {
			return err
		}
		markdown = rendered
	}
	fmt.Fprint(a.out, markdown)
	return nil
}
