/*
Package gddgraph resolves documentation dependencies for Graph Driven Development.

A project declares its features in a graph source (docs/system-map.yaml by default):

	features:
	  auth:
	    depends_on: [database]
	    docs: [docs/nodes/auth.md]
	    priority: critical
	  database:
	    docs: [docs/nodes/database.md]

For a named feature, the Engine returns the complete transitive set of documents
needed to understand it, dependencies first. It also validates the graph as a whole:
cycles, references to undeclared features, missing documents, and the "Agentes
Relevantes" section every node document is expected to carry.

# Usage

	eng, err := gddgraph.New(".")
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Resolve("auth")
	if err != nil {
		log.Fatal(err) // domain.ErrNodeNotFound or domain.ErrCircularDependency
	}
	for _, doc := range res.Docs {
		fmt.Println(doc)
	}

	issues := eng.Validate()
	if issues.HasCritical() {
		fmt.Print(eng.Report(issues, time.Now()))
	}

Graphs can also be declared in Go with pkg/dsl and injected with WithLoader and
WithDocuments, which is how the tests exercise the engine without a filesystem.
*/
package gddgraph
