package hub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// AddFavorite stars a normalized term.
func (s *Service) AddFavorite(ctx context.Context, term string) (*domain.Favorite, error) {
	term = domain.NormalizeText(term)
	if term == "" {
		return nil, domain.NewValidationError("word", "must not be empty")
	}

	fav, err := s.favorites.Add(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	s.log.InfoContext(ctx, "favorite added", slog.String("term", term))
	return fav, nil
}

// RemoveFavorite unstars a term.
func (s *Service) RemoveFavorite(ctx context.Context, term string) error {
	term = domain.NormalizeText(term)
	if term == "" {
		return domain.NewValidationError("word", "must not be empty")
	}

	if err := s.favorites.Remove(ctx, term); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	s.log.InfoContext(ctx, "favorite removed", slog.String("term", term))
	return nil
}

// ListFavorites returns all starred terms, newest first.
func (s *Service) ListFavorites(ctx context.Context) ([]domain.Favorite, error) {
	favorites, err := s.favorites.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
