package explain

import (
	"context"
	"log/slog"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionarySource interface {
	Lookup(ctx context.Context, term string) (*provider.DictionaryResult, error)
}

type languageModel interface {
	Explain(ctx context.Context, key, model, term, pageContext string, style domain.ExplanationStyle) (string, error)
	Synonyms(ctx context.Context, key, model, term string) []string
	GenerateExamples(ctx context.Context, key, model, term string) []string
}

type settingsSource interface {
	Snapshot(ctx context.Context) (domain.Settings, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service orchestrates the selection-to-explanation pipeline: it picks the
// primary upstream source per the routing policy, falls back on failure,
// and normalizes every result on the way out.
type Service struct {
	log      *slog.Logger
	dict     dictionarySource
	llm      languageModel
	settings settingsSource
	seq      *Sequencer
}

// NewService creates an explanation service.
func NewService(logger *slog.Logger, dict dictionarySource, llm languageModel, settings settingsSource) *Service {
	return &Service{
		log:      logger.With("service", "explain"),
		dict:     dict,
		llm:      llm,
		settings: settings,
		seq:      &Sequencer{},
	}
}

// Sequence exposes the request sequencer so the transport layer can
// check whether a result is still current.
func (s *Service) Sequence() *Sequencer { return s.seq }
