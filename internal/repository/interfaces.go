package repository

import (
	"context"

	"github.com/rpattn/dinaquery/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SavedSearchRepository defines the interface for saved search operations
type SavedSearchRepository interface {
	Create(ctx context.Context, search domain.SavedSearch) (domain.SavedSearch, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.SavedSearch, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.SavedSearch, error)
	List(ctx context.Context, resourceType string) ([]domain.SavedSearch, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DBTX is the subset of pgx used by repositories; satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
