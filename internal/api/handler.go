// Package api exposes the query translators and saved searches over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/rpattn/dinaquery/internal/domain"
	"github.com/rpattn/dinaquery/internal/middleware"
	"github.com/rpattn/dinaquery/internal/repository"
	"github.com/rpattn/dinaquery/internal/search"
)

// Handler serves the HTTP API.
type Handler struct {
	transformer   *search.Transformer
	dynamicFields []domain.DynamicField
	savedSearches repository.SavedSearchRepository
	logger        *zap.Logger
}

// NewHandler creates a handler. A nil transformer falls back to
// search.DefaultTransformer and a nil logger discards logs.
func NewHandler(transformer *search.Transformer, dynamicFields []domain.DynamicField, savedSearches repository.SavedSearchRepository, logger *zap.Logger) *Handler {
	if transformer == nil {
		transformer = search.DefaultTransformer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	fields := make([]domain.DynamicField, len(dynamicFields))
	copy(fields, dynamicFields)

	return &Handler{
		transformer:   transformer,
		dynamicFields: fields,
		savedSearches: savedSearches,
		logger:        logger,
	}
}

// Routes builds the router. allowedOrigins configures CORS.
func (h *Handler) Routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.LoggingMiddleware(h.logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/filters/partial-match", h.partialMatchFilter)
		r.Post("/filters/criteria", h.criteriaFilter)
		r.Post("/search/hierarchy", h.hierarchyQuery)
		r.Post("/search/dynamic-field", h.dynamicFieldQuery)
		r.Get("/dynamic-fields", h.listDynamicFields)

		r.Route("/saved-searches", func(r chi.Router) {
			r.Use(middleware.DataLoaderMiddleware(h.savedSearches))
			r.Post("/", h.createSavedSearch)
			r.Get("/", h.listSavedSearches)
			r.Get("/{id}", h.getSavedSearch)
			r.Delete("/{id}", h.deleteSavedSearch)
		})
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
	})

	return corsHandler.Handler(r)
}
