package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNodeNotFound is returned when a requested or referenced node is absent from the graph.
var ErrNodeNotFound = errors.New("node not found")

// ErrCircularDependency is returned when a node reappears within its own traversal path.
var ErrCircularDependency = errors.New("circular dependency")

// ErrGraphSourceLoad is returned when the graph source cannot be read or parsed.
var ErrGraphSourceLoad = errors.New("graph source load failed")

// NodeNotFoundError identifies the missing node and, for dependencies, who referenced it.
type NodeNotFoundError struct {
	Name         string
	ReferencedBy string
}

func (e *NodeNotFoundError) Error() string {
	if e.ReferencedBy == "" {
		return fmt.Sprintf("node %q not found", e.Name)
	}
	return fmt.Sprintf("node %q not found (referenced by %q)", e.Name, e.ReferencedBy)
}

func (e *NodeNotFoundError) Unwrap() error {
	return ErrNodeNotFound
}

// CircularDependencyError names the node that closed the cycle.
// Path is the traversal path from the root up to and including the repeated node.
type CircularDependencyError struct {
	Name string
	Path []string
}

func (e *CircularDependencyError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("circular dependency detected at %q", e.Name)
	}
	return fmt.Sprintf("circular dependency detected at %q: %s", e.Name, strings.Join(e.Path, " -> "))
}

func (e *CircularDependencyError) Unwrap() error {
	return ErrCircularDependency
}

// LoadError reports a malformed or unreadable graph source.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load graph source %s: %v", e.Path, e.Err)
}

// Is matches ErrGraphSourceLoad as well as the wrapped cause.
func (e *LoadError) Is(target error) bool {
	return target == ErrGraphSourceLoad
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
