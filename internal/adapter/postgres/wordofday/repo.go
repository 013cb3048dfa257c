// Package wordofday implements the per-day word cache using PostgreSQL.
package wordofday

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides word-of-day persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a word-of-day repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the cached pick for the given day.
// Returns domain.ErrNotFound when no pick is cached yet.
func (r *Repo) Get(ctx context.Context, day time.Time) (*domain.WordOfDay, error) {
	sql, args, err := qb.Select("day", "word").
		From("word_of_day").
		Where(squirrel.Eq{"day": day}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var w domain.WordOfDay
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&w.Day, &w.Word); err != nil {
		return nil, postgres.MapError(err, "word_of_day", day.Format(time.DateOnly))
	}
	return &w, nil
}

// Set caches the pick for a day. Concurrent callers may race on the same
// day; the first insert wins and later ones are ignored.
func (r *Repo) Set(ctx context.Context, w domain.WordOfDay) error {
	sql, args, err := qb.Insert("word_of_day").
		Columns("day", "word").
		Values(w.Day, w.Word).
		Suffix("ON CONFLICT (day) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "word_of_day", w.Day.Format(time.DateOnly))
	}
	return nil
}
