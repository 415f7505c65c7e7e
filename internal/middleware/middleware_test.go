package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rpattn/dinaquery/internal/domain"
)

type emptyRepo struct{}

func (emptyRepo) Create(ctx context.Context, s domain.SavedSearch) (domain.SavedSearch, error) {
	return s, nil
}
func (emptyRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedSearch, error) {
	return domain.SavedSearch{}, domain.ErrNotFound
}
func (emptyRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.SavedSearch, error) {
	return nil, nil
}
func (emptyRepo) List(ctx context.Context, resourceType string) ([]domain.SavedSearch, error) {
	return nil, nil
}
func (emptyRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func TestLoggingMiddlewareRecordsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "http request", entry.Message)
	assert.Equal(t, int64(http.StatusTeapot), entry.ContextMap()["status"])
	assert.Equal(t, "/healthz", entry.ContextMap()["path"])
}

func TestLoggingMiddlewareLogsServerErrorsAtErrorLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestDataLoaderMiddlewareAttachesLoader(t *testing.T) {
	var found bool
	handler := DataLoaderMiddleware(emptyRepo{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		found = SavedSearchLoaderFromContext(r.Context()) != nil
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, found)
	assert.Nil(t, SavedSearchLoaderFromContext(context.Background()))
}
