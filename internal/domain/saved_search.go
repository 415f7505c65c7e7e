package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SavedSearch is a named list-page search persisted for reuse.
type SavedSearch struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	ResourceType  string            `json:"resource_type"`
	Criteria      []FilterCriterion `json:"criteria"`
	HierarchyUUID string            `json:"hierarchy_uuid,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// NewSavedSearch creates a saved search with a fresh ID and timestamps.
func NewSavedSearch(name, resourceType string, criteria []FilterCriterion, hierarchyUUID string) SavedSearch {
	now := time.Now()
	return SavedSearch{
		ID:            uuid.New(),
		Name:          name,
		ResourceType:  resourceType,
		Criteria:      copyCriteria(criteria),
		HierarchyUUID: hierarchyUUID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate ensures the saved search can be compiled into queries.
func (s SavedSearch) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(s.ResourceType) == "" {
		return fmt.Errorf("%w: resource type is required", ErrInvalidArgument)
	}
	if len(s.Criteria) == 0 && strings.TrimSpace(s.HierarchyUUID) == "" {
		return fmt.Errorf("%w: at least one criterion or a hierarchy uuid is required", ErrInvalidArgument)
	}
	for i, c := range s.Criteria {
		if strings.TrimSpace(c.Field) == "" {
			return fmt.Errorf("%w: criterion %d has no field", ErrInvalidArgument, i)
		}
	}
	return nil
}

func copyCriteria(criteria []FilterCriterion) []FilterCriterion {
	if criteria == nil {
		return nil
	}
	out := make([]FilterCriterion, len(criteria))
	copy(out, criteria)
	return out
}
