package domain

// ResolveEvent describes a finished resolution.
type ResolveEvent struct {
	Root        string
	ChainLength int
	DocCount    int
	Err         error
}

// ValidateEvent describes a finished validation pass.
type ValidateEvent struct {
	Nodes  int
	Issues *ValidationIssues
}

// Hooks defines callbacks for resolver observability.
type Hooks struct {
	OnResolve  func(*ResolveEvent)
	OnValidate func(*ValidateEvent)
}

// Resolved invokes OnResolve if set.
func (h Hooks) Resolved(e *ResolveEvent) {
	if h.OnResolve != nil {
		h.OnResolve(e)
	}
}

// Validated invokes OnValidate if set.
func (h Hooks) Validated(e *ValidateEvent) {
	if h.OnValidate != nil {
		h.OnValidate(e)
	}
}

// Merge returns hooks that call h and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnResolve: func(e *ResolveEvent) {
			h.Resolved(e)
			other.Resolved(e)
		},
		OnValidate: func(e *ValidateEvent) {
			h.Validated(e)
			other.Validated(e)
		},
	}
}
