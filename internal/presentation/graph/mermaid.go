package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/gddgraph/pkg/domain"
)

// Visual classes applied to node declarations.
const (
	ClassCritical = "critical"
	ClassHigh     = "high"
	ClassPlanned  = "planned"
)

// classDefs are appended verbatim after the edges.
// Black text keeps labels readable on both light and dark themes.
var classDefs = []string{
	"    classDef critical fill:#ffcdd2,stroke:#b71c1c,stroke-width:3px,color:#000;",
	"    classDef high fill:#ffe0b2,stroke:#e65100,stroke-width:2px,color:#000;",
	"    classDef planned fill:#eceff1,stroke:#607d8b,stroke-dasharray:5 5,color:#000;",
}

// GenerateMermaid produces a Mermaid flowchart for the whole graph.
// Nodes are declared in graph order and tagged with a class:
// - critical priority: critical
// - high priority: high
// - planned status: planned
// Priority classes win over the planned class.
// Edges follow the same order, one per (node, dependency) pair, including
// dependencies that are not declared in the graph.
func GenerateMermaid(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	nodes := g.Nodes()
	ids := newIDSet()
	for _, node := range nodes {
		ids.assign(node.Name)
	}

	for _, node := range nodes {
		decl := fmt.Sprintf("    %s[\"%s\"]", ids.byName[node.Name], label(node.Name))
		if class := Classify(node); class != "" {
			decl += ":::" + class
		}
		sb.WriteString(decl + "\n")
	}

	for _, node := range nodes {
		from := ids.byName[node.Name]
		for _, dep := range node.DependsOn {
			to, seen := ids.byName[dep]
			if !seen {
				to = ids.assign(dep)
				// Undeclared targets keep their name visible when the ID differs.
				if to != dep {
					to = fmt.Sprintf("%s[\"%s\"]", to, label(dep))
				}
			}
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", from, to))
		}
	}

	sb.WriteString("\n")
	for _, def := range classDefs {
		sb.WriteString(def + "\n")
	}

	return sb.String()
}

// Classify returns the visual class of a node, or "" when none applies.
func Classify(node domain.NodeDefinition) string {
	switch {
	case node.Priority == domain.PriorityCritical:
		return ClassCritical
	case node.Priority == domain.PriorityHigh:
		return ClassHigh
	case node.Status == domain.StatusPlanned:
		return ClassPlanned
	}
	return ""
}

// reservedIDs cannot be used as node IDs in a flowchart.
var reservedIDs = map[string]bool{
	"end":       true,
	"graph":     true,
	"flowchart": true,
	"subgraph":  true,
	"direction": true,
	"class":     true,
	"classdef":  true,
	"click":     true,
	"style":     true,
	"linkstyle": true,
	"default":   true,
}

// idSet hands out one Mermaid ID per node name. IDs are readable, never
// reserved and never shared by two names.
type idSet struct {
	byName map[string]string
	used   map[string]bool
}

func newIDSet() *idSet {
	return &idSet{byName: map[string]string{}, used: map[string]bool{}}
}

func (s *idSet) assign(name string) string {
	if id, ok := s.byName[name]; ok {
		return id
	}
	base := sanitizeMermaidID(name)
	if base == "" || reservedIDs[strings.ToLower(base)] {
		base = "n_" + base
	}
	id := base
	for i := 2; s.used[id]; i++ {
		id = fmt.Sprintf("%s_%d", base, i)
	}
	s.used[id] = true
	s.byName[name] = id
	return id
}

func label(name string) string {
	return strings.ReplaceAll(name, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, id)
}
