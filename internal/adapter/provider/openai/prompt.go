package openai

import (
	"fmt"
	"strings"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

const maxContextChars = 800

// collapseContext whitespace-normalizes the page context and truncates it
// so prompts stay bounded regardless of what the page contained. The cut
// counts characters, not bytes, so non-ASCII context keeps its full
// window and the boundary never splits a rune.
func collapseContext(context string) string {
	collapsed := strings.Join(strings.Fields(context), " ")
	if runes := []rune(collapsed); len(runes) > maxContextChars {
		collapsed = string(runes[:maxContextChars])
	}
	return collapsed
}

func styleClause(style domain.ExplanationStyle) string {
	switch style {
	case domain.StyleTechnical:
		return "Use precise, technical vocabulary and be exact about distinctions"
	case domain.StyleSimple:
		return "Use simple, everyday words, as if explaining to a beginner"
	default:
		return "Write naturally - avoid formal dictionary-style language"
	}
}

// buildExplainPrompt produces the context-aware explanation prompt.
func buildExplainPrompt(term, context string, style domain.ExplanationStyle) string {
	return fmt.Sprintf(`You are a thoughtful assistant helping someone understand a word or phrase they've highlighted. Respond naturally based on the word and context - adapt your approach to what makes sense.

Term or phrase: %q
Context: %q

Your approach:
- Understand what they're likely trying to learn - is it a technical term? A common word used in a specific way? An unfamiliar concept?
- Explain the practical meaning conversationally, like you're helping a friend understand something
- Provide 1-2 real-world examples or use-cases naturally woven into your explanation
- Keep it under 120 words
- If multiple meanings, pick the most likely based on context
- %s
- Vary your responses - don't use the same opening every time

Respond only with the explanation (no markdown, no formatting, just plain text).`,
		term, collapseContext(context), styleClause(style))
}

func buildSynonymPrompt(term string) string {
	return fmt.Sprintf(`Provide 5-8 synonyms for the word %q. Return only a comma-separated list of words, no explanations, no numbers, no bullets. Example: word1, word2, word3`, term)
}

func buildExamplePrompt(term string) string {
	return fmt.Sprintf(`Provide 2-3 real example sentences that actually USE the word %[1]q in natural contexts. Each sentence must contain the word %[1]q and demonstrate its meaning. Return only the sentences, one per line, no numbering, no bullets, no explanations. Do NOT say "The word X is..." or "X is commonly used" - just provide actual example sentences.`, term)
}
