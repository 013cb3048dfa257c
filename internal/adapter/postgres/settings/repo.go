// Package settings implements the single-row user-configuration
// repository using PostgreSQL. The row is created by migration; reads
// and writes always target it.
package settings

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the current settings row.
func (r *Repo) Get(ctx context.Context) (domain.Settings, error) {
	sql, args, err := qb.Select("api_key", "style", "model", "prefer_free").
		From("settings").
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("build select: %w", err)
	}

	var s domain.Settings
	var style string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.APIKey, &style, &s.Model, &s.PreferFree); err != nil {
		return domain.Settings{}, postgres.MapError(err, "settings", "1")
	}
	s.Style = domain.ExplanationStyle(style)
	return s, nil
}

// Update replaces the settings row.
func (r *Repo) Update(ctx context.Context, s domain.Settings) error {
	sql, args, err := qb.Update("settings").
		Set("api_key", s.APIKey).
		Set("style", s.Style.String()).
		Set("model", s.Model).
		Set("prefer_free", s.PreferFree).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "settings", "1")
	}
	return nil
}
