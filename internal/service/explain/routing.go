package explain

import (
	"regexp"
	"strings"

	"github.com/wordlens/wordlens-backend/internal/provider"
)

// Routing heuristics: a dictionary success is only good enough to skip
// the language model when its explanation is informative, and complex
// terms prefer the model even when the dictionary answered.

var (
	acronymPattern       = regexp.MustCompile(`[A-Z]{2,}`)
	medicalPrefixPattern = regexp.MustCompile(`(?i)^(anti|auto|bio|cardio|derm|endo|gastro|hemo|neuro|osteo|patho|psycho|pulmo|thrombo)`)
	medicalSuffixPattern = regexp.MustCompile(`(?i)(itis|osis|emia|oma|pathy|scopy|tomy|ectomy|plasty)$`)
)

// shouldUseModel decides whether a successful dictionary result should
// still be upgraded via the language model.
func shouldUseModel(term, context string, d *provider.DictionaryResult) bool {
	if !goodEnough(d) {
		return true
	}
	if isComplexTerm(term) {
		return true
	}
	return hasComplexContext(term, context) && isGenericExplanation(d.Explanation)
}

// goodEnough reports whether a dictionary result is informative on its
// own: found, with a real explanation rather than a not-found or
// no-definition message.
func goodEnough(d *provider.DictionaryResult) bool {
	if d == nil || !d.Found {
		return false
	}
	lower := strings.ToLower(d.Explanation)
	return len(d.Explanation) > 20 &&
		!strings.Contains(lower, "not found") &&
		!strings.Contains(lower, "no definition")
}

// isComplexTerm flags hyphenated compounds, long words, acronyms, and
// medical vocabulary, which free-dictionary definitions handle poorly.
func isComplexTerm(term string) bool {
	return strings.Contains(term, "-") ||
		len(term) > 15 ||
		acronymPattern.MatchString(term) ||
		medicalPrefixPattern.MatchString(term) ||
		medicalSuffixPattern.MatchString(term)
}

func hasComplexContext(term, context string) bool {
	if context == "" {
		return false
	}
	if strings.Contains(strings.ToLower(context), strings.ToLower(term)+" ") {
		return true
	}
	return len(strings.Fields(context)) > 10
}

func isGenericExplanation(explanation string) bool {
	lower := strings.ToLower(explanation)
	return len(explanation) < 50 ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "no definition")
}
