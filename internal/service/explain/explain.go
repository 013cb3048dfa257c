package explain

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/provider"
)

// Terminal failure messages shown in place of an explanation after every
// fallback option is exhausted.
const (
	msgTimedOut   = "Request timed out. Please try again."
	msgNetwork    = "Network error. Please check your connection and try again."
	msgGeneric    = "Unable to find definition. Please try again."
	msgMissingKey = "Unable to find definition. Add an API key in settings to enable AI explanations."
)

// Explain runs one request through the pipeline. Settings are read fresh
// per request so live configuration changes take effect immediately.
// Upstream failures never escape as errors: after all fallbacks are
// exhausted the result carries a user-facing Error message and an empty
// synonym slice. The only returned error is request validation.
func (s *Service) Explain(ctx context.Context, req domain.ExplanationRequest) (domain.ExplanationResult, error) {
	if err := req.Validate(); err != nil {
		return domain.ExplanationResult{}, err
	}
	term := strings.TrimSpace(req.Term)
	if req.Seq == 0 {
		req.Seq = s.seq.Next()
	}

	settings, err := s.settings.Snapshot(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "settings snapshot failed, using defaults", slog.String("error", err.Error()))
		settings = domain.Settings{Style: domain.StylePlain, PreferFree: true}
	}

	var result domain.ExplanationResult
	if !settings.HasKey() || settings.PreferFree {
		result = s.freeFirst(ctx, term, req, settings)
	} else {
		result = s.modelFirst(ctx, term, req, settings)
	}

	result.Seq = req.Seq
	return normalize(term, result), nil
}

// freeFirst attempts the dictionary source, optionally upgrading a weak
// result via the language model, and falls back to the model when the
// dictionary fails outright.
func (s *Service) freeFirst(ctx context.Context, term string, req domain.ExplanationRequest, settings domain.Settings) domain.ExplanationResult {
	dict, err := s.dict.Lookup(ctx, term)
	if err == nil {
		result := fromDictionary(dict)
		upgraded := false

		if settings.HasKey() && shouldUseModel(term, req.Context, dict) {
			if modelResult, merr := s.explainWithModel(ctx, term, req, settings); merr == nil {
				if modelResult.Pronunciation == "" {
					modelResult.Pronunciation = result.Pronunciation
				}
				result = modelResult
				upgraded = true
			} else {
				// Keep the dictionary result; the upgrade was opportunistic.
				s.log.WarnContext(ctx, "model upgrade failed", slog.String("term", term), slog.String("error", merr.Error()))
			}
		}

		// A successful detailed upgrade already ran the example call;
		// enriching again would repeat it within the same request.
		if req.Detailed && !upgraded {
			s.enrichExamples(ctx, term, settings, &result)
		}
		return result
	}

	s.log.WarnContext(ctx, "dictionary lookup failed", slog.String("term", term), slog.String("error", err.Error()))

	if !settings.HasKey() {
		return domain.ExplanationResult{Error: msgMissingKey, Synonyms: []string{}}
	}
	result, merr := s.explainWithModel(ctx, term, req, settings)
	if merr != nil {
		s.log.ErrorContext(ctx, "all sources failed", slog.String("term", term), slog.String("error", merr.Error()))
		return terminalResult(merr)
	}
	return result
}

// modelFirst attempts the language model, falling back to the dictionary
// on any failure. Both failing yields a terminal error result whose
// message distinguishes timeout, network, and generic failures.
func (s *Service) modelFirst(ctx context.Context, term string, req domain.ExplanationRequest, settings domain.Settings) domain.ExplanationResult {
	result, merr := s.explainWithModel(ctx, term, req, settings)
	if merr == nil {
		return result
	}

	s.log.WarnContext(ctx, "model explain failed, falling back to dictionary",
		slog.String("term", term), slog.String("error", merr.Error()))

	dict, derr := s.dict.Lookup(ctx, term)
	if derr != nil {
		s.log.ErrorContext(ctx, "all sources failed", slog.String("term", term), slog.String("error", derr.Error()))
		return terminalResult(merr)
	}

	fallback := fromDictionary(dict)
	if req.Detailed {
		s.enrichExamples(ctx, term, settings, &fallback)
	}
	return fallback
}

// explainWithModel runs the primary explanation call plus the synonym
// call, and the example call when detailed. The auxiliary calls degrade
// to empty on failure inside the client; only the primary call fails.
func (s *Service) explainWithModel(ctx context.Context, term string, req domain.ExplanationRequest, settings domain.Settings) (domain.ExplanationResult, error) {
	text, err := s.llm.Explain(ctx, settings.APIKey, settings.Model, term, req.Context, settings.Style)
	if err != nil {
		return domain.ExplanationResult{}, err
	}

	result := domain.ExplanationResult{
		Explanation: text,
		Synonyms:    s.llm.Synonyms(ctx, settings.APIKey, settings.Model, term),
	}
	if req.Detailed {
		result.Examples = s.llm.GenerateExamples(ctx, settings.APIKey, settings.Model, term)
	}
	return result, nil
}

// enrichExamples fills in generated example sentences for a detailed
// request when the current result has none worth keeping. Usable
// upstream examples are never discarded in favor of generated ones.
func (s *Service) enrichExamples(ctx context.Context, term string, settings domain.Settings, result *domain.ExplanationResult) {
	if !settings.HasKey() || hasUsableExample(term, result.Examples) {
		return
	}
	generated := s.llm.GenerateExamples(ctx, settings.APIKey, settings.Model, term)
	if len(generated) > 0 {
		result.Examples = generated
	}
}

func hasUsableExample(term string, examples []string) bool {
	for _, e := range examples {
		if domain.ContainsTerm(term, e) && !domain.IsMetaText(term, e) {
			return true
		}
	}
	return false
}

func fromDictionary(d *provider.DictionaryResult) domain.ExplanationResult {
	return domain.ExplanationResult{
		Explanation:   d.Explanation,
		Synonyms:      d.Synonyms,
		Pronunciation: d.Pronunciation,
		Examples:      d.Examples,
	}
}

func terminalResult(err error) domain.ExplanationResult {
	msg := msgGeneric
	switch {
	case errors.Is(err, domain.ErrTimedOut):
		msg = msgTimedOut
	case errors.Is(err, domain.ErrNetwork):
		msg = msgNetwork
	}
	return domain.ExplanationResult{Error: msg, Synonyms: []string{}}
}
