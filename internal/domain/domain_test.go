package domain

import (
	"errors"
	"testing"
)

func TestDynamicFieldValidate(t *testing.T) {
	valid := DynamicField{Type: DynamicFieldTypeManagedAttribute, Path: "data.attributes.managedAttributes"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := DynamicField{Type: "OTHER", Path: "x"}.Validate()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for unknown type, got %v", err)
	}

	err = DynamicField{Type: DynamicFieldTypeFieldExtension, Path: "  "}.Validate()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for blank path, got %v", err)
	}
}

func TestDynamicFieldIDIncludesRelationship(t *testing.T) {
	f := DynamicField{Type: DynamicFieldTypeManagedAttribute, Path: "managedAttributes", ReferencedBy: "collecting-event"}
	if got := f.ID(); got != "collecting-event.managedAttributes" {
		t.Fatalf("unexpected id %q", got)
	}
}

func TestSavedSearchValidate(t *testing.T) {
	s := NewSavedSearch("mine", "material-sample", []FilterCriterion{{Field: "materialSampleName", Value: "abc"}}, "")
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := NewSavedSearch("mine", "material-sample", nil, "")
	if err := empty.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument without criteria, got %v", err)
	}

	blankField := NewSavedSearch("mine", "material-sample", []FilterCriterion{{Field: " ", Value: "abc"}}, "")
	if err := blankField.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for blank field, got %v", err)
	}
}

func TestNewSavedSearchCopiesCriteria(t *testing.T) {
	criteria := []FilterCriterion{{Field: "a", Value: "1"}}
	s := NewSavedSearch("n", "r", criteria, "")
	criteria[0].Value = "2"
	if s.Criteria[0].Value != "1" {
		t.Fatalf("saved search shares criteria slice with caller")
	}
}
