package api

import (
	"net/http"

	"github.com/rpattn/dinaquery/internal/domain"
	"github.com/rpattn/dinaquery/internal/rsql"
)

type partialMatchRequest struct {
	Fields []string `json:"fields"`
	Value  string   `json:"value"`
}

type criteriaRequest struct {
	Criteria []domain.FilterCriterion `json:"criteria"`
}

func (h *Handler) partialMatchFilter(w http.ResponseWriter, r *http.Request) {
	var req partialMatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.renderError(w, err)
		return
	}

	build, err := rsql.PartialMatchFilter(req.Fields)
	if err != nil {
		h.renderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, build(req.Value))
}

func (h *Handler) criteriaFilter(w http.ResponseWriter, r *http.Request) {
	var req criteriaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.renderError(w, err)
		return
	}

	filter, err := rsql.FromCriteria(req.Criteria)
	if err != nil {
		h.renderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, filter)
}
