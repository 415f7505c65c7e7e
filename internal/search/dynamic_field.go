package search

import (
	"fmt"
	"strings"

	"github.com/rpattn/dinaquery/internal/domain"
)

// IncludedPath holds related resources indexed alongside a record.
const IncludedPath = "included"

// DynamicFieldQuery matches records whose dynamic attribute key equals value.
// Fields reached through a relationship are matched inside the included
// documents of the referencing type.
func (t *Transformer) DynamicFieldQuery(field domain.DynamicField, key string, value any) (Query, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: dynamic field key is required", domain.ErrInvalidArgument)
	}

	target := strings.TrimSuffix(field.Path, ".") + "." + key
	if field.ReferencedBy == "" {
		return Match(target, value), nil
	}

	return Nested(IncludedPath, Bool{
		Must: []Query{
			Match(IncludedPath+".type", field.ReferencedBy),
			Match(target, value),
		},
	}.Query()), nil
}
