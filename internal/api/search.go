package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rpattn/dinaquery/internal/domain"
)

// dynamicFieldQueryRequest names a configured dynamic field either by ID, as
// served by /dynamic-fields, or by its type, path and referencedBy.
type dynamicFieldQueryRequest struct {
	ID           string                  `json:"id"`
	Type         domain.DynamicFieldType `json:"type"`
	Path         string                  `json:"path"`
	ReferencedBy string                  `json:"referencedBy"`
	Key          string                  `json:"key"`
	Value        any                     `json:"value"`
}

func (h *Handler) hierarchyQuery(w http.ResponseWriter, r *http.Request) {
	var req domain.HierarchyCriterion
	if err := decodeJSON(w, r, &req); err != nil {
		h.renderError(w, err)
		return
	}

	query, err := h.transformer.HierarchyQuery(req.UUID)
	if err != nil {
		h.renderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, query)
}

func (h *Handler) dynamicFieldQuery(w http.ResponseWriter, r *http.Request) {
	var req dynamicFieldQueryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.renderError(w, err)
		return
	}

	field, err := h.lookupDynamicField(req)
	if err != nil {
		h.renderError(w, err)
		return
	}

	query, err := h.transformer.DynamicFieldQuery(field, req.Key, req.Value)
	if err != nil {
		h.renderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, query)
}

// lookupDynamicField resolves the request against the configured mapping.
// Only mapped fields can be queried.
func (h *Handler) lookupDynamicField(req dynamicFieldQueryRequest) (domain.DynamicField, error) {
	id := strings.TrimSpace(req.ID)
	for _, f := range h.dynamicFields {
		if id != "" {
			if f.ID() == id {
				return f, nil
			}
			continue
		}
		if f.Type == req.Type && f.Path == req.Path && f.ReferencedBy == req.ReferencedBy {
			return f, nil
		}
	}

	if id != "" {
		return domain.DynamicField{}, fmt.Errorf("%w: unknown dynamic field %q", domain.ErrInvalidArgument, id)
	}
	return domain.DynamicField{}, fmt.Errorf("%w: %s %q is not a configured dynamic field", domain.ErrInvalidArgument, req.Type, req.Path)
}
