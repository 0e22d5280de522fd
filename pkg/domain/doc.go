/*
Package domain contains the core domain models of the gddgraph resolver.

It defines the feature graph and the values produced when resolving and validating it.
This package is kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - NodeDefinition: A feature node with its dependencies, documents, priority and status.
  - Graph: The immutable, ordered set of nodes loaded from the graph source.
  - ResolutionResult: The dependency chain and deduplicated documents for one root.
  - ValidationIssues: Graph-wide findings grouped in six fixed categories.
*/
package domain
