/*
Package ports defines the driven ports (interfaces) for the gddgraph resolver.

These interfaces decouple the core logic from external implementations, allowing
the resolver to work with various graph sources and document stores.

# Key Interfaces

  - GraphLoader: Responsible for loading the feature graph (e.g., from YAML or Memory).
  - DocumentSource: Responsible for existence checks and text reads of node documents.
*/
package ports
