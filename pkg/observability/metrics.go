package observability

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/gddgraph/pkg/domain"
)

// Resolution outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeCycle    = "cycle"
	OutcomeError    = "error"
)

// Metrics holds the Prometheus collectors of one engine.
// It uses its own registry so several engines can coexist in a process.
type Metrics struct {
	registry    *prometheus.Registry
	findings    *prometheus.GaugeVec
	nodes       prometheus.Gauge
	validations prometheus.Counter
	resolutions *prometheus.CounterVec
	chainLength prometheus.Histogram
	docCount    prometheus.Histogram
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		findings: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gddgraph_findings",
				Help: "Findings of the last validation pass",
			},
			[]string{"category", "severity"},
		),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gddgraph_graph_nodes",
			Help: "Nodes declared in the graph at the last validation pass",
		}),
		validations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gddgraph_validations_total",
			Help: "Total number of validation passes",
		}),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gddgraph_resolutions_total",
				Help: "Total number of resolutions by outcome",
			},
			[]string{"outcome"},
		),
		chainLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gddgraph_resolution_chain_length",
			Help:    "Visits recorded per successful resolution",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		docCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gddgraph_resolution_docs",
			Help:    "Distinct documents per successful resolution",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	m.registry.MustRegister(m.findings, m.nodes, m.validations, m.resolutions, m.chainLength, m.docCount)

	// Pre-create every category so an all-clear pass still exports zeros.
	for _, c := range domain.Categories() {
		m.findings.WithLabelValues(string(c), string(c.Severity()))
	}
	return m
}

// Registry exposes the underlying registry, e.g. for promhttp or testutil.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns hooks that feed the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnResolve:  m.ObserveResolve,
		OnValidate: m.ObserveValidate,
	}
}

// ObserveResolve records one resolution.
func (m *Metrics) ObserveResolve(e *domain.ResolveEvent) {
	outcome := Outcome(e.Err)
	m.resolutions.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.chainLength.Observe(float64(e.ChainLength))
		m.docCount.Observe(float64(e.DocCount))
	}
}

// ObserveValidate replaces the finding gauges with the result of one pass.
func (m *Metrics) ObserveValidate(e *domain.ValidateEvent) {
	m.validations.Inc()
	m.nodes.Set(float64(e.Nodes))
	if e.Issues == nil {
		return
	}
	for _, c := range domain.Categories() {
		m.findings.WithLabelValues(string(c), string(c.Severity())).Set(float64(len(e.Issues.Findings(c))))
	}
}

// WriteTextfile writes the current values in the text exposition format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// Outcome classifies a resolution error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrNodeNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrCircularDependency):
		return OutcomeCycle
	default:
		return OutcomeError
	}
}
