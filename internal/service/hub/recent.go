package hub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// RecordSearch notes that a term was looked up. Repeat lookups move the
// term to the front of the list instead of duplicating it.
func (s *Service) RecordSearch(ctx context.Context, term string) error {
	term = domain.NormalizeText(term)
	if term == "" {
		return domain.NewValidationError("word", "must not be empty")
	}

	if err := s.recent.Touch(ctx, term, s.now()); err != nil {
		return fmt.Errorf("record search: %w", err)
	}
	return nil
}

// RecentSearches returns unexpired searches, newest first, capped at
// limit (or the global cap when limit is zero).
func (s *Service) RecentSearches(ctx context.Context, limit int) ([]domain.RecentSearch, error) {
	searches, err := s.recent.List(ctx, limit, s.now())
	if err != nil {
		return nil, fmt.Errorf("list recent searches: %w", err)
	}
	return searches, nil
}

// ClearRecent wipes the whole recent-search list.
func (s *Service) ClearRecent(ctx context.Context) error {
	if err := s.recent.Clear(ctx); err != nil {
		return fmt.Errorf("clear recent searches: %w", err)
	}
	s.log.InfoContext(ctx, "recent searches cleared")
	return nil
}

// PruneRecent removes entries older than the retention window. Intended
// for a periodic background sweep.
func (s *Service) PruneRecent(ctx context.Context) error {
	removed, err := s.recent.Prune(ctx, s.now())
	if err != nil {
		return fmt.Errorf("prune recent searches: %w", err)
	}
	if removed > 0 {
		s.log.InfoContext(ctx, "recent searches pruned", slog.Int64("removed", removed))
	}
	return nil
}
