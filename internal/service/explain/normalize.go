package explain

import (
	"strings"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

const defaultExplanation = "No explanation returned."

// normalize enforces the response-shape invariants on every exit path,
// regardless of which source produced the result: synonyms are always a
// non-nil, deduplicated, term-excluding slice capped at 8; examples, when
// present, literally contain the term and carry no meta-text; an empty
// explanation is replaced with a fixed default.
func normalize(term string, res domain.ExplanationResult) domain.ExplanationResult {
	res.Synonyms = domain.CleanSynonyms(term, res.Synonyms)
	if res.Examples != nil {
		res.Examples = domain.CleanExamples(term, res.Examples, domain.MaxExamples)
	}
	if strings.TrimSpace(res.Explanation) == "" {
		res.Explanation = defaultExplanation
	}
	return res
}
