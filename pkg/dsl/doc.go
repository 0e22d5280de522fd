/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing feature graphs.

It allows developers to declare nodes, dependencies and documents using a fluent builder
instead of a system-map YAML file. This is particularly useful for unit testing and for
embedding the resolver in other tools.

Example usage:

	b := dsl.New()

	b.Add("shield").
		Critical().
		DependsOn("queue-system", "cost-control").
		Docs("docs/nodes/shield.md")

	b.Add("queue-system").
		Docs("docs/nodes/queue-system.md")

	b.Add("cost-control").
		Planned().
		DependsOn("queue-system")

	// The resulting loader can be passed to gddgraph.New(..., gddgraph.WithLoader(loader))
	loader, err := b.Build()
*/
package dsl
