package hub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// curatedWords is the rotation pool for the word of the day.
var curatedWords = []string{
	"serendipity", "ephemeral", "eloquent", "resilient", "mellifluous",
	"ubiquitous", "perspicacious", "luminous", "effervescent", "quintessential",
	"enigmatic", "pragmatic", "vivacious", "tenacious", "magnanimous",
	"sagacious", "benevolent", "audacious", "fastidious", "gregarious",
	"diligent", "profound", "ingenious", "meticulous", "ambitious",
	"courageous", "generous", "optimistic", "passionate", "luminary",
}

// WordOfDayResult pairs the day's pick with its detailed explanation.
type WordOfDayResult struct {
	Word    domain.WordOfDay         `json:"wordOfDay"`
	Details domain.ExplanationResult `json:"details"`
}

// WordOfDay returns the pick for today (UTC), choosing and caching one
// on first request of the day, and fetches its detailed explanation
// through the pipeline. A failed detail lookup still returns the word;
// the details then carry the pipeline's error message.
func (s *Service) WordOfDay(ctx context.Context) (*WordOfDayResult, error) {
	day := s.now().UTC().Truncate(24 * time.Hour)

	pick, err := s.wordOfDay.Get(ctx, day)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		pick = &domain.WordOfDay{Day: day, Word: pickFor(day)}
		if serr := s.wordOfDay.Set(ctx, *pick); serr != nil {
			return nil, fmt.Errorf("cache word of day: %w", serr)
		}
		s.log.InfoContext(ctx, "word of day picked", slog.String("word", pick.Word))
	case err != nil:
		return nil, fmt.Errorf("get word of day: %w", err)
	}

	details, err := s.explainer.Explain(ctx, domain.ExplanationRequest{
		Term:     pick.Word,
		Detailed: true,
	})
	if err != nil {
		return nil, fmt.Errorf("explain word of day: %w", err)
	}

	return &WordOfDayResult{Word: *pick, Details: details}, nil
}

// pickFor maps a day to a curated word deterministically, so the pick is
// stable even if the cached row is lost and re-created mid-day.
func pickFor(day time.Time) string {
	epochDays := int(day.Unix() / 86400)
	return curatedWords[epochDays%len(curatedWords)]
}
