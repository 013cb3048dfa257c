// Package recent implements the recent-search repository using PostgreSQL.
// A term appears at most once; re-searching moves it to the front. Entries
// expire after the retention window and the list is capped on read.
package recent

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides recent-search persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a recent-search repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Touch records a search for the term, moving an existing entry to the
// front instead of duplicating it.
func (r *Repo) Touch(ctx context.Context, term string, at time.Time) error {
	sql, args, err := qb.Insert("recent_searches").
		Columns("term", "searched_at").
		Values(term, at).
		Suffix("ON CONFLICT (term) DO UPDATE SET searched_at = EXCLUDED.searched_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "recent_search", term)
	}
	return nil
}

// List returns unexpired searches, newest first, capped at limit.
func (r *Repo) List(ctx context.Context, limit int, now time.Time) ([]domain.RecentSearch, error) {
	if limit <= 0 || limit > domain.MaxRecentSearches {
		limit = domain.MaxRecentSearches
	}
	cutoff := now.Add(-domain.RecentRetention)

	sql, args, err := qb.Select("term", "searched_at").
		From("recent_searches").
		Where(squirrel.Gt{"searched_at": cutoff}).
		OrderBy("searched_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list recent_searches: %w", err)
	}
	defer rows.Close()

	searches := []domain.RecentSearch{}
	for rows.Next() {
		var rs domain.RecentSearch
		if err := rows.Scan(&rs.Term, &rs.SearchedAt); err != nil {
			return nil, fmt.Errorf("scan recent_search: %w", err)
		}
		searches = append(searches, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent_searches: %w", err)
	}
	return searches, nil
}

// Prune deletes entries older than the retention window and returns how
// many were removed.
func (r *Repo) Prune(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-domain.RecentRetention)

	sql, args, err := qb.Delete("recent_searches").
		Where(squirrel.LtOrEq{"searched_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("prune recent_searches: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Clear removes every recent search.
func (r *Repo) Clear(ctx context.Context) error {
	sql, args, err := qb.Delete("recent_searches").ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("clear recent_searches: %w", err)
	}
	return nil
}
