package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DataDog/jsonapi"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rpattn/dinaquery/internal/domain"
	"github.com/rpattn/dinaquery/internal/middleware"
	"github.com/rpattn/dinaquery/internal/rsql"
	"github.com/rpattn/dinaquery/internal/search"
)

type createSavedSearchRequest struct {
	Name          string                   `json:"name"`
	ResourceType  string                   `json:"resourceType"`
	Criteria      []domain.FilterCriterion `json:"criteria"`
	HierarchyUUID string                   `json:"hierarchyUuid"`
}

// savedSearchResource is the JSON:API view of a saved search, including the
// queries compiled from its criteria.
type savedSearchResource struct {
	ID            string                   `jsonapi:"primary,saved-search"`
	Name          string                   `jsonapi:"attribute" json:"name"`
	ResourceType  string                   `jsonapi:"attribute" json:"resourceType"`
	Criteria      []domain.FilterCriterion `jsonapi:"attribute" json:"criteria"`
	HierarchyUUID string                   `jsonapi:"attribute" json:"hierarchyUuid,omitempty"`
	RSQL          string                   `jsonapi:"attribute" json:"rsql,omitempty"`
	Query         search.Query             `jsonapi:"attribute" json:"query,omitempty"`
	CreatedAt     time.Time                `jsonapi:"attribute" json:"createdAt"`
	UpdatedAt     time.Time                `jsonapi:"attribute" json:"updatedAt"`
}

// compileSavedSearch renders the RSQL filter and hierarchy query a saved
// search stands for. Either part is empty when the search does not use it.
func compileSavedSearch(t *search.Transformer, s domain.SavedSearch) (rsql.Filter, search.Query, error) {
	var (
		filter rsql.Filter
		query  search.Query
		err    error
	)
	if len(s.Criteria) > 0 {
		if filter, err = rsql.FromCriteria(s.Criteria); err != nil {
			return rsql.Filter{}, nil, err
		}
	}
	if strings.TrimSpace(s.HierarchyUUID) != "" {
		if query, err = t.HierarchyQuery(s.HierarchyUUID); err != nil {
			return rsql.Filter{}, nil, err
		}
	}
	return filter, query, nil
}

// newSavedSearchResource renders a stored search. A part that no longer
// compiles under the current settings is left out of the resource and logged.
func (h *Handler) newSavedSearchResource(s domain.SavedSearch) *savedSearchResource {
	res := &savedSearchResource{
		ID:            s.ID.String(),
		Name:          s.Name,
		ResourceType:  s.ResourceType,
		Criteria:      s.Criteria,
		HierarchyUUID: s.HierarchyUUID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}

	if len(s.Criteria) > 0 {
		filter, err := rsql.FromCriteria(s.Criteria)
		if err != nil {
			h.logger.Warn("stored saved search criteria do not compile", zap.Stringer("id", s.ID), zap.Error(err))
		} else {
			res.RSQL = filter.RSQL
		}
	}
	if strings.TrimSpace(s.HierarchyUUID) != "" {
		query, err := h.transformer.HierarchyQuery(s.HierarchyUUID)
		if err != nil {
			h.logger.Warn("stored saved search hierarchy does not compile", zap.Stringer("id", s.ID), zap.Error(err))
		} else {
			res.Query = query
		}
	}
	return res
}

func (h *Handler) newSavedSearchResources(searches []domain.SavedSearch) []*savedSearchResource {
	resources := make([]*savedSearchResource, 0, len(searches))
	for _, s := range searches {
		resources = append(resources, h.newSavedSearchResource(s))
	}
	return resources
}

func (h *Handler) createSavedSearch(w http.ResponseWriter, r *http.Request) {
	var req createSavedSearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.renderError(w, err)
		return
	}

	s := domain.NewSavedSearch(strings.TrimSpace(req.Name), strings.TrimSpace(req.ResourceType), req.Criteria, strings.TrimSpace(req.HierarchyUUID))
	if err := s.Validate(); err != nil {
		h.renderError(w, err)
		return
	}
	// Reject searches that would not compile before they are stored.
	if _, _, err := compileSavedSearch(h.transformer, s); err != nil {
		h.renderError(w, err)
		return
	}

	created, err := h.savedSearches.Create(r.Context(), s)
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.renderJSONAPI(w, http.StatusCreated, h.newSavedSearchResource(created))
}

func (h *Handler) listSavedSearches(w http.ResponseWriter, r *http.Request) {
	if ids := r.URL.Query().Get("ids"); ids != "" {
		h.savedSearchesByIDs(w, r, strings.Split(ids, ","))
		return
	}

	searches, err := h.savedSearches.List(r.Context(), r.URL.Query().Get("resourceType"))
	if err != nil {
		h.renderError(w, err)
		return
	}

	resources := h.newSavedSearchResources(searches)
	h.renderJSONAPI(w, http.StatusOK, resources, jsonapi.MarshalMeta(map[string]any{"totalResourceCount": len(resources)}))
}

func (h *Handler) savedSearchesByIDs(w http.ResponseWriter, r *http.Request, ids []string) {
	loader := middleware.SavedSearchLoaderFromContext(r.Context())
	if loader == nil {
		h.renderError(w, errors.New("saved search loader not found in context"))
		return
	}

	for i := range ids {
		ids[i] = strings.TrimSpace(ids[i])
	}

	searches, errs := loader.LoadMany(r.Context(), ids)
	for _, err := range errs {
		if err != nil {
			h.renderError(w, err)
			return
		}
	}

	resources := h.newSavedSearchResources(searches)
	h.renderJSONAPI(w, http.StatusOK, resources)
}

func (h *Handler) getSavedSearch(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, err)
		return
	}

	s, err := h.savedSearches.GetByID(r.Context(), id)
	if err != nil {
		h.renderError(w, err)
		return
	}

	h.renderJSONAPI(w, http.StatusOK, h.newSavedSearchResource(s))
}

func (h *Handler) deleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, err)
		return
	}

	if err := h.savedSearches.Delete(r.Context(), id); err != nil {
		h.renderError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q: %v", domain.ErrInvalidArgument, raw, err)
	}
	return id, nil
}
