package domain

import (
	"fmt"
	"strings"
)

// metaPhrases are substrings that mark a sentence as describing the term
// instead of using it ("meta-text"). Matched case-insensitively; the
// %q-style phrases are expanded with the concrete term.
var metaPhrases = []string{
	"commonly used",
	"is an example",
	"example of",
}

// IsMetaText reports whether a candidate example sentence talks about
// the term rather than using it in a natural sentence.
func IsMetaText(term, sentence string) bool {
	lower := strings.ToLower(sentence)
	termLower := strings.ToLower(term)

	if strings.Contains(lower, fmt.Sprintf("the word %q", termLower)) {
		return true
	}
	if strings.Contains(lower, fmt.Sprintf("%q is", termLower)) {
		return true
	}
	for _, p := range metaPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// ContainsTerm reports whether the sentence literally contains the term,
// case-insensitively.
func ContainsTerm(term, sentence string) bool {
	return strings.Contains(strings.ToLower(sentence), strings.ToLower(term))
}

// CleanSynonyms enforces the synonym shape invariant: entries are
// trimmed, non-empty, deduplicated case-insensitively in order of first
// occurrence, never case-equal to the term itself, and capped at
// MaxSynonyms. The returned slice is always non-nil.
func CleanSynonyms(term string, in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	termLower := strings.ToLower(strings.TrimSpace(term))

	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if key == termLower {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if len(out) == MaxSynonyms {
			break
		}
	}
	return out
}

// CleanExamples enforces the example relevance invariant: entries are
// trimmed, non-empty, deduplicated in order, must literally contain the
// term (case-insensitive), must not be meta-text, and are capped at max.
// Returns nil when nothing survives so callers can omit the field.
func CleanExamples(term string, in []string, max int) []string {
	var out []string
	seen := make(map[string]struct{}, len(in))

	for _, e := range in {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		if !ContainsTerm(term, e) || IsMetaText(term, e) {
			continue
		}
		out = append(out, e)
		if len(out) == max {
			break
		}
	}
	return out
}
