package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/gddgraph/internal/presentation/graph"
	"github.com/aretw0/gddgraph/pkg/domain"
	"github.com/aretw0/gddgraph/pkg/dsl"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		build    func(b *dsl.Builder)
		contains []string
		excludes []string
	}{
		{
			name: "Priority Classes",
			build: func(b *dsl.Builder) {
				b.Add("auth").Critical()
				b.Add("billing").High()
				b.Add("search").Planned()
				b.Add("blog")
			},
			contains: []string{
				"auth[\"auth\"]:::critical\n",
				"billing[\"billing\"]:::high\n",
				"search[\"search\"]:::planned\n",
				"blog[\"blog\"]\n",
			},
		},
		{
			name: "Critical Wins Over Planned",
			build: func(b *dsl.Builder) {
				b.Add("vault").Critical().Planned()
				b.Add("cache").High().Planned()
			},
			contains: []string{
				"vault[\"vault\"]:::critical\n",
				"cache[\"cache\"]:::high\n",
			},
			excludes: []string{":::planned"},
		},
		{
			name: "ID Sanitization",
			build: func(b *dsl.Builder) {
				b.Add("api/v1.users").DependsOn("user-store")
				b.Add("user-store")
			},
			contains: []string{
				"api_v1_users[\"api/v1.users\"]",
				"user_store[\"user-store\"]",
				"api_v1_users --> user_store\n",
			},
		},
		{
			name: "Colliding And Reserved IDs",
			build: func(b *dsl.Builder) {
				b.Add("a-b").DependsOn("end")
				b.Add("a_b").DependsOn("a-b")
				b.Add("end")
			},
			contains: []string{
				"    a_b[\"a-b\"]\n",
				"    a_b_2[\"a_b\"]\n",
				"    n_end[\"end\"]\n",
				"    a_b --> n_end\n",
				"    a_b_2 --> a_b\n",
			},
			excludes: []string{" end[", "--> end\n"},
		},
		{
			name: "Undeclared Reserved Dependency",
			build: func(b *dsl.Builder) {
				b.Add("a").DependsOn("graph", "x.y")
			},
			contains: []string{
				"    a --> n_graph[\"graph\"]\n",
				"    a --> x_y[\"x.y\"]\n",
			},
		},
		{
			name: "Undeclared Dependency Edge",
			build: func(b *dsl.Builder) {
				b.Add("a").DependsOn("ghost")
			},
			contains: []string{"a --> ghost\n"},
			excludes: []string{"ghost[\"ghost\"]"},
		},
		{
			name: "Class Definitions",
			build: func(b *dsl.Builder) {
				b.Add("a")
			},
			contains: []string{
				"classDef critical ",
				"classDef high ",
				"classDef planned ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := dsl.New()
			tt.build(b)
			got := graph.GenerateMermaid(b.MustGraph())
			if !strings.HasPrefix(got, "graph TD\n") {
				t.Errorf("GenerateMermaid() missing header:\n%v", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnexpected substring: %v", got, unwanted)
				}
			}
		})
	}
}

func TestGenerateMermaid_Counts(t *testing.T) {
	b := dsl.New()
	b.Add("app").DependsOn("auth", "db", "cache")
	b.Add("auth").DependsOn("db")
	b.Add("db")
	b.Add("cache").DependsOn("db")
	g := b.MustGraph()

	got := graph.GenerateMermaid(g)

	declarations, edges := 0, 0
	for _, line := range strings.Split(got, "\n") {
		switch {
		case strings.Contains(line, "[\""):
			declarations++
		case strings.Contains(line, " --> "):
			edges++
		}
	}
	if declarations != g.Len() {
		t.Errorf("declarations = %d, want %d", declarations, g.Len())
	}
	if edges != 5 {
		t.Errorf("edges = %d, want 5", edges)
	}

	wantEdges := "    app --> auth\n    app --> db\n    app --> cache\n    auth --> db\n    cache --> db\n"
	if !strings.Contains(got, wantEdges) {
		t.Errorf("edges out of declared order:\n%v", got)
	}
}

func TestGenerateMermaid_Deterministic(t *testing.T) {
	b := dsl.New()
	for _, name := range []string{"z", "m", "a", "k", "b"} {
		b.Add(name).DependsOn("a").High()
	}
	g := b.MustGraph()

	first := graph.GenerateMermaid(g)
	for i := 0; i < 10; i++ {
		if got := graph.GenerateMermaid(g); got != first {
			t.Fatalf("run %d differs:\n%v\nvs\n%v", i, got, first)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		node domain.NodeDefinition
		want string
	}{
		{domain.NodeDefinition{Priority: domain.PriorityCritical, Status: domain.StatusPlanned}, graph.ClassCritical},
		{domain.NodeDefinition{Priority: domain.PriorityHigh}, graph.ClassHigh},
		{domain.NodeDefinition{Priority: domain.PriorityLow, Status: domain.StatusPlanned}, graph.ClassPlanned},
		{domain.NodeDefinition{Priority: domain.PriorityMedium, Status: domain.StatusActive}, ""},
		{domain.NodeDefinition{Priority: "urgent"}, ""},
	}
	for _, tt := range tests {
		if got := graph.Classify(tt.node); got != tt.want {
			t.Errorf("Classify(%+v) = %q, want %q", tt.node, got, tt.want)
		}
	}
}
