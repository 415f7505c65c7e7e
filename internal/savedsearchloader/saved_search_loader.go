package savedsearchloader

import (
	"context"
	"fmt"
	"time"

	"github.com/rpattn/dinaquery/internal/domain"
	"github.com/rpattn/dinaquery/internal/repository"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader"
)

// SavedSearchLoader batches saved search lookups made while serving a request.
type SavedSearchLoader struct {
	Loader *dataloader.Loader
}

func NewSavedSearchLoader(repo repository.SavedSearchRepository) *SavedSearchLoader {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		results := make([]*dataloader.Result, len(keys))

		// Convert keys to []uuid.UUID; invalid keys fail individually
		ids := make([]uuid.UUID, 0, len(keys))
		parsed := make([]uuid.UUID, len(keys))
		valid := make([]bool, len(keys))
		for i, k := range keys {
			id, err := uuid.Parse(k.String())
			if err != nil {
				results[i] = &dataloader.Result{Error: fmt.Errorf("%w: saved search id %q: %v", domain.ErrInvalidArgument, k.String(), err)}
				continue
			}
			parsed[i] = id
			valid[i] = true
			ids = append(ids, id)
		}

		searches, err := repo.GetByIDs(ctx, ids)
		if err != nil {
			for i := range results {
				if results[i] == nil {
					results[i] = &dataloader.Result{Error: err}
				}
			}
			return results
		}

		byID := make(map[uuid.UUID]domain.SavedSearch, len(searches))
		for _, s := range searches {
			byID[s.ID] = s
		}

		// Build results in the same order as keys
		for i := range keys {
			if !valid[i] {
				continue
			}
			if s, ok := byID[parsed[i]]; ok {
				results[i] = &dataloader.Result{Data: s}
			} else {
				results[i] = &dataloader.Result{Error: fmt.Errorf("saved search %s: %w", parsed[i], domain.ErrNotFound)}
			}
		}

		return results
	}

	loader := dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(5*time.Millisecond))

	return &SavedSearchLoader{Loader: loader}
}

// LoadMany resolves ids through the batch loader, keeping input order. Missing
// or invalid ids are reported in the returned error slice at their index.
func (l *SavedSearchLoader) LoadMany(ctx context.Context, ids []string) ([]domain.SavedSearch, []error) {
	thunk := l.Loader.LoadMany(ctx, dataloader.NewKeysFromStrings(ids))
	raw, errs := thunk()

	searches := make([]domain.SavedSearch, len(ids))
	for i, r := range raw {
		if s, ok := r.(domain.SavedSearch); ok {
			searches[i] = s
		}
	}

	for _, err := range errs {
		if err != nil {
			return searches, errs
		}
	}
	return searches, nil
}
