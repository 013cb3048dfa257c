// Package provider defines the shapes shared by upstream lookup sources.
package provider

// DictionaryResult is a dictionary lookup outcome. Found is false when
// the upstream answered cleanly but has no entry for the term; that is
// a successful lookup, not an error.
type DictionaryResult struct {
	Word          string
	Explanation   string
	Synonyms      []string
	Pronunciation string
	Examples      []string
	Found         bool
}
