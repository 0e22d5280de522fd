package agents

import "strings"

// DefaultSectionTitle is the heading that introduces the agents section of a node document.
const DefaultSectionTitle = "Agentes Relevantes"

// DefaultRoster lists the recognized agent roles.
var DefaultRoster = []string{
	"Orchestrator",
	"Documentation Agent",
	"Test Engineer",
	"Backend Developer",
	"Back-end Dev",
	"Front-end Dev",
	"UI Designer",
	"UX Researcher",
	"Whimsy Injector",
	"Guardian",
	"Explore",
	"Performance Monitor",
	"Security Engineer",
	"Task Assessor",
	"GitHub Monitor",
}

// Roster is a closed set of recognized agent names.
// Matching is exact after trimming surrounding whitespace.
type Roster struct {
	names []string
	set   map[string]struct{}
}

// NewRoster creates a roster from names. Blank names are ignored.
func NewRoster(names ...string) *Roster {
	r := &Roster{set: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := r.set[name]; ok {
			continue
		}
		r.set[name] = struct{}{}
		r.names = append(r.names, name)
	}
	return r
}

// Contains reports whether name is a recognized agent.
func (r *Roster) Contains(name string) bool {
	_, ok := r.set[strings.TrimSpace(name)]
	return ok
}

// Names returns the recognized agents in declaration order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
