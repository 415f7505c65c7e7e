package savedsearchloader

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpattn/dinaquery/internal/domain"
)

type stubRepo struct {
	searches map[uuid.UUID]domain.SavedSearch
	calls    int
	err      error
}

func (s *stubRepo) Create(ctx context.Context, search domain.SavedSearch) (domain.SavedSearch, error) {
	return search, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedSearch, error) {
	if v, ok := s.searches[id]; ok {
		return v, nil
	}
	return domain.SavedSearch{}, domain.ErrNotFound
}

func (s *stubRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.SavedSearch, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := []domain.SavedSearch{}
	for _, id := range ids {
		if v, ok := s.searches[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubRepo) List(ctx context.Context, resourceType string) ([]domain.SavedSearch, error) {
	return nil, nil
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func TestLoadManyKeepsOrderInOneBatch(t *testing.T) {
	a := domain.NewSavedSearch("a", "material-sample", []domain.FilterCriterion{{Field: "f", Value: "1"}}, "")
	b := domain.NewSavedSearch("b", "material-sample", []domain.FilterCriterion{{Field: "f", Value: "2"}}, "")
	repo := &stubRepo{searches: map[uuid.UUID]domain.SavedSearch{a.ID: a, b.ID: b}}

	searches, errs := NewSavedSearchLoader(repo).LoadMany(context.Background(), []string{b.ID.String(), a.ID.String()})
	require.Empty(t, errs)
	assert.Equal(t, "b", searches[0].Name)
	assert.Equal(t, "a", searches[1].Name)
	assert.Equal(t, 1, repo.calls)
}

func TestLoadManyReportsMissingAndInvalidIDs(t *testing.T) {
	a := domain.NewSavedSearch("a", "material-sample", []domain.FilterCriterion{{Field: "f", Value: "1"}}, "")
	repo := &stubRepo{searches: map[uuid.UUID]domain.SavedSearch{a.ID: a}}

	searches, errs := NewSavedSearchLoader(repo).LoadMany(context.Background(), []string{a.ID.String(), uuid.NewString(), "nope"})
	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.True(t, errors.Is(errs[1], domain.ErrNotFound))
	assert.True(t, errors.Is(errs[2], domain.ErrInvalidArgument))
	assert.Equal(t, "a", searches[0].Name)
}

func TestLoadManyPropagatesRepositoryError(t *testing.T) {
	repo := &stubRepo{err: errors.New("db down")}

	_, errs := NewSavedSearchLoader(repo).LoadMany(context.Background(), []string{uuid.NewString()})
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "db down")
}
