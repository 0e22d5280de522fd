package dsl

import "github.com/aretw0/gddgraph/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node domain.NodeDefinition
}

// DependsOn appends dependencies in the given order.
func (n *NodeBuilder) DependsOn(names ...string) *NodeBuilder {
	n.node.DependsOn = append(n.node.DependsOn, names...)
	return n
}

// Docs appends document paths in the given order.
func (n *NodeBuilder) Docs(paths ...string) *NodeBuilder {
	n.node.Docs = append(n.node.Docs, paths...)
	return n
}

// Priority sets the node priority.
func (n *NodeBuilder) Priority(p domain.Priority) *NodeBuilder {
	n.node.Priority = p
	return n
}

// Critical is shorthand for Priority(domain.PriorityCritical).
func (n *NodeBuilder) Critical() *NodeBuilder {
	return n.Priority(domain.PriorityCritical)
}

// High is shorthand for Priority(domain.PriorityHigh).
func (n *NodeBuilder) High() *NodeBuilder {
	return n.Priority(domain.PriorityHigh)
}

// Status sets the node status.
func (n *NodeBuilder) Status(s domain.Status) *NodeBuilder {
	n.node.Status = s
	return n
}

// Planned is shorthand for Status(domain.StatusPlanned).
func (n *NodeBuilder) Planned() *NodeBuilder {
	return n.Status(domain.StatusPlanned)
}

// Build returns the underlying domain.NodeDefinition.
// This is primarily used by the Builder, but exposed for advanced usage.
func (n *NodeBuilder) Build() domain.NodeDefinition {
	return n.node.Clone()
}
