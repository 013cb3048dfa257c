// Package hub implements the companion features around the explanation
// pipeline: starred terms, the recent-search list, and the word of the
// day.
package hub

import (
	"context"
	"log/slog"
	"time"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type favoriteRepo interface {
	Add(ctx context.Context, term string) (*domain.Favorite, error)
	Remove(ctx context.Context, term string) error
	List(ctx context.Context) ([]domain.Favorite, error)
}

type recentRepo interface {
	Touch(ctx context.Context, term string, at time.Time) error
	List(ctx context.Context, limit int, now time.Time) ([]domain.RecentSearch, error)
	Prune(ctx context.Context, now time.Time) (int64, error)
	Clear(ctx context.Context) error
}

type wordOfDayRepo interface {
	Get(ctx context.Context, day time.Time) (*domain.WordOfDay, error)
	Set(ctx context.Context, w domain.WordOfDay) error
}

type explainer interface {
	Explain(ctx context.Context, req domain.ExplanationRequest) (domain.ExplanationResult, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the hub business logic.
type Service struct {
	log       *slog.Logger
	favorites favoriteRepo
	recent    recentRepo
	wordOfDay wordOfDayRepo
	explainer explainer
	now       func() time.Time
}

// NewService creates a hub service.
func NewService(logger *slog.Logger, favorites favoriteRepo, recent recentRepo, wordOfDay wordOfDayRepo, explainer explainer) *Service {
	return &Service{
		log:       logger.With("service", "hub"),
		favorites: favorites,
		recent:    recent,
		wordOfDay: wordOfDay,
		explainer: explainer,
		now:       time.Now,
	}
}
