package domain

import (
	"fmt"
	"strings"
)

// DynamicFieldType tags how a dynamic attribute is stored on a record.
type DynamicFieldType string

const (
	DynamicFieldTypeManagedAttribute DynamicFieldType = "MANAGED_ATTRIBUTE"
	DynamicFieldTypeFieldExtension   DynamicFieldType = "FIELD_EXTENSION"
)

// IsValid reports whether the type is one of the known variants.
func (t DynamicFieldType) IsValid() bool {
	switch t {
	case DynamicFieldTypeManagedAttribute, DynamicFieldTypeFieldExtension:
		return true
	}
	return false
}

// DynamicField describes an attribute path whose keys are defined at runtime
// (managed attributes or field extensions). ReferencedBy is set when the field
// lives on a related resource rather than on the listed one.
type DynamicField struct {
	Type         DynamicFieldType `json:"type" mapstructure:"type"`
	Path         string           `json:"path" mapstructure:"path"`
	Component    string           `json:"component,omitempty" mapstructure:"component"`
	ReferencedBy string           `json:"referencedBy,omitempty" mapstructure:"referenced_by"`
}

// Validate checks the descriptor is usable by the query transformers.
func (f DynamicField) Validate() error {
	if !f.Type.IsValid() {
		return fmt.Errorf("%w: unknown dynamic field type %q", ErrInvalidArgument, f.Type)
	}
	if strings.TrimSpace(f.Path) == "" {
		return fmt.Errorf("%w: dynamic field path is required", ErrInvalidArgument)
	}
	return nil
}

// ID is a stable identifier for the descriptor, unique within a mapping.
func (f DynamicField) ID() string {
	if f.ReferencedBy == "" {
		return f.Path
	}
	return f.ReferencedBy + "." + f.Path
}
