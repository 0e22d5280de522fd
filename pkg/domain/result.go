package domain

// ChainLink is one visit recorded during a resolution.
type ChainLink struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"`
}

// ResolutionResult is the outcome of resolving a single root node.
type ResolutionResult struct {
	// Docs holds every document reachable from the root, deduplicated by first occurrence.
	Docs []string `json:"docs"`
	// Chain lists visits in pre-order, including repeated visits of shared dependencies.
	Chain []ChainLink `json:"chain"`
}

// Dedupe returns items without repeats, keeping the first occurrence of each.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
