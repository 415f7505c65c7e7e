package domain

// FilterCriterion pairs a resource attribute path with a search term.
// Multiple criteria combine with logical OR in the order they are given.
type FilterCriterion struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// HierarchyCriterion identifies a node whose hierarchy entries at the
// configured rank must match.
type HierarchyCriterion struct {
	UUID string `json:"uuid"`
}
