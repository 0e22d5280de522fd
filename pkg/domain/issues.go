package domain

// Category names one of the fixed validation finding groups.
type Category string

const (
	CategoryCircularDeps         Category = "circular_deps"
	CategoryMissingDeps          Category = "missing_deps"
	CategoryMissingDocs          Category = "missing_docs"
	CategoryMissingAgentsSection Category = "missing_agents_section"
	CategoryDuplicateAgents      Category = "duplicate_agents"
	CategoryInvalidAgents        Category = "invalid_agents"
)

// Severity splits categories into blocking and advisory ones.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

var categories = []Category{
	CategoryCircularDeps,
	CategoryMissingDeps,
	CategoryMissingDocs,
	CategoryMissingAgentsSection,
	CategoryDuplicateAgents,
	CategoryInvalidAgents,
}

// Categories returns all categories in report order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Severity returns the severity of the category.
func (c Category) Severity() Severity {
	switch c {
	case CategoryDuplicateAgents, CategoryInvalidAgents:
		return SeverityWarning
	default:
		return SeverityCritical
	}
}

// Title returns a human readable label.
func (c Category) Title() string {
	switch c {
	case CategoryCircularDeps:
		return "Circular Dependencies"
	case CategoryMissingDeps:
		return "Missing Dependencies"
	case CategoryMissingDocs:
		return "Missing Documentation Files"
	case CategoryMissingAgentsSection:
		return "Missing Agents Section"
	case CategoryDuplicateAgents:
		return "Duplicate Agents"
	case CategoryInvalidAgents:
		return "Invalid Agents"
	}
	return string(c)
}

// Finding is a single validation result attributed to a node.
//
// Field usage per category:
//   - circular_deps: Node is the traversal root, Subject the node that closed the cycle, Path the traversal path.
//   - missing_deps: Subject is the undeclared dependency.
//   - missing_docs: Doc is the document path, Reason why it could not be used.
//   - missing_agents_section: Doc is the document lacking the section.
//   - duplicate_agents, invalid_agents: Doc is the document, Subject the agent name.
type Finding struct {
	Node    string   `json:"node"`
	Subject string   `json:"subject,omitempty"`
	Doc     string   `json:"doc,omitempty"`
	Path    []string `json:"path,omitempty"`
	Reason  string   `json:"reason,omitempty"`
}

// ValidationIssues aggregates every finding of one validation pass.
type ValidationIssues struct {
	CircularDeps         []Finding `json:"circular_deps"`
	MissingDeps          []Finding `json:"missing_deps"`
	MissingDocs          []Finding `json:"missing_docs"`
	MissingAgentsSection []Finding `json:"missing_agents_section"`
	DuplicateAgents      []Finding `json:"duplicate_agents"`
	InvalidAgents        []Finding `json:"invalid_agents"`
}

// NewValidationIssues returns an aggregate with every category initialised (empty, not nil).
func NewValidationIssues() *ValidationIssues {
	return &ValidationIssues{
		CircularDeps:         []Finding{},
		MissingDeps:          []Finding{},
		MissingDocs:          []Finding{},
		MissingAgentsSection: []Finding{},
		DuplicateAgents:      []Finding{},
		InvalidAgents:        []Finding{},
	}
}

// Findings returns the findings recorded under category c.
func (v *ValidationIssues) Findings(c Category) []Finding {
	switch c {
	case CategoryCircularDeps:
		return v.CircularDeps
	case CategoryMissingDeps:
		return v.MissingDeps
	case CategoryMissingDocs:
		return v.MissingDocs
	case CategoryMissingAgentsSection:
		return v.MissingAgentsSection
	case CategoryDuplicateAgents:
		return v.DuplicateAgents
	case CategoryInvalidAgents:
		return v.InvalidAgents
	}
	return nil
}

// Add appends a finding to category c.
func (v *ValidationIssues) Add(c Category, f Finding) {
	switch c {
	case CategoryCircularDeps:
		v.CircularDeps = append(v.CircularDeps, f)
	case CategoryMissingDeps:
		v.MissingDeps = append(v.MissingDeps, f)
	case CategoryMissingDocs:
		v.MissingDocs = append(v.MissingDocs, f)
	case CategoryMissingAgentsSection:
		v.MissingAgentsSection = append(v.MissingAgentsSection, f)
	case CategoryDuplicateAgents:
		v.DuplicateAgents = append(v.DuplicateAgents, f)
	case CategoryInvalidAgents:
		v.InvalidAgents = append(v.InvalidAgents, f)
	}
}

// Count returns the number of findings with the given severity.
func (v *ValidationIssues) Count(s Severity) int {
	total := 0
	for _, c := range categories {
		if c.Severity() == s {
			total += len(v.Findings(c))
		}
	}
	return total
}

// CriticalCount returns the number of findings in critical categories.
func (v *ValidationIssues) CriticalCount() int {
	return v.Count(SeverityCritical)
}

// WarningCount returns the number of findings in warning categories.
func (v *ValidationIssues) WarningCount() int {
	return v.Count(SeverityWarning)
}

// HasCritical reports whether any critical category is non-empty.
func (v *ValidationIssues) HasCritical() bool {
	return v.CriticalCount() > 0
}

// Clean reports whether no category holds a finding.
func (v *ValidationIssues) Clean() bool {
	return v.CriticalCount() == 0 && v.WarningCount() == 0
}
