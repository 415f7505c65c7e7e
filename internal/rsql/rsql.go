// Package rsql builds RSQL filter expressions for JSON:API list endpoints.
package rsql

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rpattn/dinaquery/internal/domain"
)

// QueryParam is the JSON:API query parameter the filter is sent as.
const QueryParam = "filter[rsql]"

// Filter wraps a rendered RSQL expression.
type Filter struct {
	RSQL string `json:"rsql"`
}

// QueryParams encodes the filter as request query parameters. An empty filter
// yields no parameters.
func (f Filter) QueryParams() url.Values {
	values := url.Values{}
	if f.RSQL != "" {
		values.Set(QueryParam, f.RSQL)
	}
	return values
}

// PartialMatchFilter returns a function that matches value as a substring of
// any of the given fields: "f1==*value*,f2==*value*". Field order is kept.
// The value is not escaped.
func PartialMatchFilter(fields []string) (func(value string) Filter, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: at least one field is required", domain.ErrInvalidArgument)
	}
	for i, field := range fields {
		if strings.TrimSpace(field) == "" {
			return nil, fmt.Errorf("%w: field %d is blank", domain.ErrInvalidArgument, i)
		}
	}

	selectors := make([]string, len(fields))
	copy(selectors, fields)

	return func(value string) Filter {
		parts := make([]string, len(selectors))
		for i, field := range selectors {
			parts[i] = partialMatch(field, value)
		}
		return Filter{RSQL: strings.Join(parts, string(OrSeparator))}
	}, nil
}

// FromCriteria ORs a partial match for each criterion, each with its own value.
func FromCriteria(criteria []domain.FilterCriterion) (Filter, error) {
	if len(criteria) == 0 {
		return Filter{}, fmt.Errorf("%w: at least one criterion is required", domain.ErrInvalidArgument)
	}

	parts := make([]string, len(criteria))
	for i, c := range criteria {
		if strings.TrimSpace(c.Field) == "" {
			return Filter{}, fmt.Errorf("%w: criterion %d has no field", domain.ErrInvalidArgument, i)
		}
		parts[i] = partialMatch(c.Field, c.Value)
	}

	return Filter{RSQL: strings.Join(parts, string(OrSeparator))}, nil
}

func partialMatch(field, value string) string {
	return field + string(OpEqual) + "*" + value + "*"
}
