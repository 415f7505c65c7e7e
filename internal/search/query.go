// Package search builds Elastic-Search query DSL fragments.
package search

import "encoding/json"

// Query is a DSL fragment. It marshals to the nested mapping the search API
// expects.
type Query map[string]any

// JSON renders the query as indented JSON.
func (q Query) JSON() ([]byte, error) {
	return json.MarshalIndent(q, "", "  ")
}

// Match builds {"match": {field: value}}.
func Match(field string, value any) Query {
	return Query{"match": map[string]any{field: value}}
}

// Term builds {"term": {field: value}}.
func Term(field string, value any) Query {
	return Query{"term": map[string]any{field: value}}
}

// Wildcard builds a case-insensitive wildcard query.
func Wildcard(field, pattern string) Query {
	return Query{"wildcard": map[string]any{
		field: map[string]any{
			"value":            pattern,
			"case_insensitive": true,
		},
	}}
}

// Bool groups clauses under a bool query. Empty clause lists are omitted.
type Bool struct {
	Must    []Query
	Should  []Query
	MustNot []Query
	Filter  []Query
}

// Query renders the bool clause.
func (b Bool) Query() Query {
	body := map[string]any{}
	if len(b.Must) > 0 {
		body["must"] = b.Must
	}
	if len(b.Should) > 0 {
		body["should"] = b.Should
	}
	if len(b.MustNot) > 0 {
		body["must_not"] = b.MustNot
	}
	if len(b.Filter) > 0 {
		body["filter"] = b.Filter
	}
	return Query{"bool": body}
}

// Nested wraps query so it is evaluated against objects under path.
func Nested(path string, query Query) Query {
	return Query{"nested": map[string]any{
		"path":  path,
		"query": query,
	}}
}
