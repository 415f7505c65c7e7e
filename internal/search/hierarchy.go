package search

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rpattn/dinaquery/internal/config"
	"github.com/rpattn/dinaquery/internal/domain"
)

// HierarchyPath is where hierarchy entries are indexed on a record document.
const HierarchyPath = "data.attributes.hierarchy"

// Transformer turns search criteria into DSL fragments. The zero value pins
// hierarchy queries to rank 0; use NewTransformer or DefaultTransformer.
type Transformer struct {
	// Rank is the hierarchy rank every hierarchy query is pinned to.
	Rank int
	// StrictUUID rejects hierarchy UUIDs that do not parse.
	StrictUUID bool
}

// NewTransformer creates a transformer from search settings.
func NewTransformer(cfg config.SearchConfig) *Transformer {
	return &Transformer{Rank: cfg.HierarchyRank, StrictUUID: cfg.StrictUUID}
}

// DefaultTransformer uses the default rank and passes UUIDs through.
func DefaultTransformer() *Transformer {
	return &Transformer{Rank: config.DefaultHierarchyRank}
}

// HierarchyQuery matches records whose hierarchy contains id at the
// configured rank.
func (t *Transformer) HierarchyQuery(id string) (Query, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: hierarchy uuid is required", domain.ErrInvalidArgument)
	}
	if t.StrictUUID {
		if _, err := uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%w: hierarchy uuid %q: %v", domain.ErrInvalidArgument, id, err)
		}
	}

	return Nested(HierarchyPath, Bool{
		Must: []Query{
			Match(HierarchyPath+".uuid", id),
			Match(HierarchyPath+".rank", t.Rank),
		},
	}.Query()), nil
}

// HierarchyQuery builds a hierarchy query with the default transformer.
func HierarchyQuery(id string) (Query, error) {
	return DefaultTransformer().HierarchyQuery(id)
}
