package middleware

import (
	"context"
	"net/http"

	"github.com/rpattn/dinaquery/internal/repository"
	"github.com/rpattn/dinaquery/internal/savedsearchloader"
)

type ctxKey string

const savedSearchLoaderKey ctxKey = "savedSearchLoader"

// DataLoaderMiddleware attaches a saved search loader to the request context
func DataLoaderMiddleware(repo repository.SavedSearchRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loader := savedsearchloader.NewSavedSearchLoader(repo)
			ctx := context.WithValue(r.Context(), savedSearchLoaderKey, loader)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SavedSearchLoaderFromContext retrieves the loader from context
func SavedSearchLoaderFromContext(ctx context.Context) *savedsearchloader.SavedSearchLoader {
	if l, ok := ctx.Value(savedSearchLoaderKey).(*savedsearchloader.SavedSearchLoader); ok {
		return l
	}
	return nil
}
