package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxSynonyms is the hard cap on synonyms in any ExplanationResult.
const MaxSynonyms = 8

// MaxExamples is the hard cap on example sentences in any ExplanationResult.
const MaxExamples = 5

// ExplanationRequest is a single selection-to-explanation round trip.
// Term is required, trimmed, and at most two words; Context is the
// surrounding page text (truncated before prompt use); Detailed asks
// for example sentences.
type ExplanationRequest struct {
	Term     string `json:"word"`
	Context  string `json:"context"`
	Detailed bool   `json:"detailed,omitempty"`

	// Seq is a monotonically increasing id assigned per request so a
	// consumer can discard responses superseded by a later selection.
	Seq uint64 `json:"seq,omitempty"`
}

// Validate checks the request invariants. Term must be non-blank after
// trimming, at least two characters, and at most two whitespace words.
func (r ExplanationRequest) Validate() error {
	term := strings.TrimSpace(r.Term)
	if utf8.RuneCountInString(term) < 2 {
		return NewValidationError("word", "must be at least 2 characters")
	}
	if len(strings.Fields(term)) > 2 {
		return NewValidationError("word", "must be at most 2 words")
	}
	return nil
}

// ExplanationResult is the canonical pipeline output. After normalization
// every field is present: Synonyms is never nil, Explanation is never
// empty, and Error is set only when the whole pipeline failed (in which
// case Synonyms is still an empty slice).
type ExplanationResult struct {
	Explanation   string   `json:"explanation"`
	Synonyms      []string `json:"synonyms"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	Examples      []string `json:"examples,omitempty"`
	Error         string   `json:"error,omitempty"`

	// Seq echoes ExplanationRequest.Seq for last-request-wins filtering.
	Seq uint64 `json:"seq,omitempty"`
}

// ExplanationStyle selects the tone of language-model explanations.
type ExplanationStyle string

const (
	StylePlain     ExplanationStyle = "plain"
	StyleTechnical ExplanationStyle = "technical"
	StyleSimple    ExplanationStyle = "simple"
)

func (s ExplanationStyle) String() string { return string(s) }

func (s ExplanationStyle) IsValid() bool {
	switch s {
	case StylePlain, StyleTechnical, StyleSimple:
		return true
	}
	return false
}

// Settings is the per-request snapshot of user configuration. It is read
// fresh for every explanation so live settings changes take effect
// immediately; nothing here is cached across requests.
type Settings struct {
	APIKey     string           `json:"apiKey"`
	Style      ExplanationStyle `json:"style"`
	Model      string           `json:"model"`
	PreferFree bool             `json:"preferFree"`
}

// HasKey reports whether a language-model API key is configured.
func (s Settings) HasKey() bool { return strings.TrimSpace(s.APIKey) != "" }
