package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rpattn/dinaquery/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const savedSearchColumns = "id, name, resource_type, criteria, hierarchy_uuid, created_at, updated_at"

// savedSearchRepository implements SavedSearchRepository on Postgres
type savedSearchRepository struct {
	db DBTX
}

// NewSavedSearchRepository creates a new saved search repository
func NewSavedSearchRepository(db DBTX) SavedSearchRepository {
	return &savedSearchRepository{db: db}
}

// Create inserts a saved search
func (r *savedSearchRepository) Create(ctx context.Context, search domain.SavedSearch) (domain.SavedSearch, error) {
	if err := search.Validate(); err != nil {
		return domain.SavedSearch{}, err
	}

	criteria, err := json.Marshal(nonNilCriteria(search.Criteria))
	if err != nil {
		return domain.SavedSearch{}, fmt.Errorf("failed to marshal criteria: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO saved_searches (id, name, resource_type, criteria, hierarchy_uuid, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+savedSearchColumns,
		search.ID, search.Name, search.ResourceType, criteria, search.HierarchyUUID,
		search.CreatedAt, search.UpdatedAt,
	)

	created, err := scanSavedSearch(row)
	if err != nil {
		return domain.SavedSearch{}, fmt.Errorf("failed to create saved search: %w", err)
	}
	return created, nil
}

// GetByID retrieves a saved search by ID
func (r *savedSearchRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedSearch, error) {
	row := r.db.QueryRow(ctx, `SELECT `+savedSearchColumns+` FROM saved_searches WHERE id = $1`, id)

	search, err := scanSavedSearch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SavedSearch{}, fmt.Errorf("saved search %s: %w", id, domain.ErrNotFound)
		}
		return domain.SavedSearch{}, fmt.Errorf("failed to get saved search: %w", err)
	}
	return search, nil
}

// GetByIDs retrieves the saved searches that exist among ids, in no particular order
func (r *savedSearchRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.SavedSearch, error) {
	if len(ids) == 0 {
		return []domain.SavedSearch{}, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+savedSearchColumns+` FROM saved_searches WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved searches: %w", err)
	}
	return collectSavedSearches(rows)
}

// List retrieves saved searches, optionally restricted to one resource type
func (r *savedSearchRepository) List(ctx context.Context, resourceType string) ([]domain.SavedSearch, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if resourceType == "" {
		rows, err = r.db.Query(ctx, `SELECT `+savedSearchColumns+` FROM saved_searches ORDER BY created_at, id`)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT `+savedSearchColumns+` FROM saved_searches WHERE resource_type = $1 ORDER BY created_at, id`,
			resourceType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	return collectSavedSearches(rows)
}

// Delete removes a saved search
func (r *savedSearchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_searches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved search: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("saved search %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func collectSavedSearches(rows pgx.Rows) ([]domain.SavedSearch, error) {
	defer rows.Close()

	searches := make([]domain.SavedSearch, 0)
	for rows.Next() {
		search, err := scanSavedSearch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved search: %w", err)
		}
		searches = append(searches, search)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read saved searches: %w", err)
	}
	return searches, nil
}

func scanSavedSearch(row pgx.Row) (domain.SavedSearch, error) {
	var (
		search    domain.SavedSearch
		criteria  []byte
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&search.ID, &search.Name, &search.ResourceType, &criteria,
		&search.HierarchyUUID, &createdAt, &updatedAt); err != nil {
		return domain.SavedSearch{}, err
	}

	if len(criteria) > 0 {
		if err := json.Unmarshal(criteria, &search.Criteria); err != nil {
			return domain.SavedSearch{}, fmt.Errorf("invalid criteria JSON: %w", err)
		}
	}
	search.CreatedAt = createdAt.UTC()
	search.UpdatedAt = updatedAt.UTC()
	return search, nil
}

func nonNilCriteria(criteria []domain.FilterCriterion) []domain.FilterCriterion {
	if criteria == nil {
		return []domain.FilterCriterion{}
	}
	return criteria
}
