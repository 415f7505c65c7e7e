package api

import (
	"net/http"

	"github.com/rpattn/dinaquery/internal/domain"
)

// dynamicFieldResource is the JSON:API view of a dynamic field descriptor.
// "type" is reserved by JSON:API, so the variant is exposed as fieldType.
type dynamicFieldResource struct {
	ID           string `jsonapi:"primary,dynamic-field"`
	FieldType    string `jsonapi:"attribute" json:"fieldType"`
	Path         string `jsonapi:"attribute" json:"path"`
	Component    string `jsonapi:"attribute" json:"component,omitempty"`
	ReferencedBy string `jsonapi:"attribute" json:"referencedBy,omitempty"`
}

func newDynamicFieldResource(f domain.DynamicField) *dynamicFieldResource {
	return &dynamicFieldResource{
		ID:           f.ID(),
		FieldType:    string(f.Type),
		Path:         f.Path,
		Component:    f.Component,
		ReferencedBy: f.ReferencedBy,
	}
}

func (h *Handler) listDynamicFields(w http.ResponseWriter, r *http.Request) {
	component := r.URL.Query().Get("component")

	resources := make([]*dynamicFieldResource, 0, len(h.dynamicFields))
	for _, f := range h.dynamicFields {
		if component != "" && f.Component != component {
			continue
		}
		resources = append(resources, newDynamicFieldResource(f))
	}

	h.renderJSONAPI(w, http.StatusOK, resources)
}
