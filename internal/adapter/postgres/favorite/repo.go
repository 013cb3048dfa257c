// Package favorite implements the starred-terms repository using PostgreSQL.
package favorite

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides favorite persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a favorite repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Add stars a term. Returns domain.ErrAlreadyExists if it is already starred.
func (r *Repo) Add(ctx context.Context, term string) (*domain.Favorite, error) {
	sql, args, err := qb.Insert("favorites").
		Columns("term").
		Values(term).
		Suffix("RETURNING term, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var fav domain.Favorite
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&fav.Term, &fav.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "favorite", term)
	}
	return &fav, nil
}

// Remove unstars a term. Returns domain.ErrNotFound if it was not starred.
func (r *Repo) Remove(ctx context.Context, term string) error {
	sql, args, err := qb.Delete("favorites").
		Where(squirrel.Eq{"term": term}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "favorite", term)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("favorite %q: %w", term, domain.ErrNotFound)
	}
	return nil
}

// List returns all starred terms, most recently starred first.
func (r *Repo) List(ctx context.Context) ([]domain.Favorite, error) {
	sql, args, err := qb.Select("term", "created_at").
		From("favorites").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []domain.Favorite{}
	for rows.Next() {
		var fav domain.Favorite
		if err := rows.Scan(&fav.Term, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}
	return favorites, nil
}
