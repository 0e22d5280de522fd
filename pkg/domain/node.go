package domain

import "slices"

// Priority classifies how important a feature node is.
type Priority string

// Known priorities. Unknown values are preserved as-is.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// DefaultPriority is applied when a node declares none.
const DefaultPriority = PriorityMedium

// Status describes the lifecycle stage of a feature node.
type Status string

// Known statuses. The set is open; other values are kept verbatim.
const (
	StatusActive     Status = "active"
	StatusPlanned    Status = "planned"
	StatusDeprecated Status = "deprecated"
)

// DefaultStatus is applied when a node declares none.
const DefaultStatus = StatusActive

// NodeDefinition represents a logical unit of the feature graph.
type NodeDefinition struct {
	Name      string   `json:"name" yaml:"name"`
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	Docs      []string `json:"docs,omitempty" yaml:"docs,omitempty"`
	Priority  Priority `json:"priority" yaml:"priority"`
	Status    Status   `json:"status" yaml:"status"`
}

// WithDefaults returns a copy with empty priority and status filled in.
func (n NodeDefinition) WithDefaults() NodeDefinition {
	if n.Priority == "" {
		n.Priority = DefaultPriority
	}
	if n.Status == "" {
		n.Status = DefaultStatus
	}
	return n
}

// Clone returns a deep copy so callers cannot mutate graph-owned slices.
func (n NodeDefinition) Clone() NodeDefinition {
	n.DependsOn = slices.Clone(n.DependsOn)
	n.Docs = slices.Clone(n.Docs)
	return n
}

// FirstDoc returns the first declared document, if any.
func (n NodeDefinition) FirstDoc() (string, bool) {
	if len(n.Docs) == 0 {
		return "", false
	}
	return n.Docs[0], true
}
