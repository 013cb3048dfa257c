package freedict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
	"unicode"

	"github.com/wordlens/wordlens-backend/internal/domain"
	"github.com/wordlens/wordlens-backend/internal/provider"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

const defaultTimeout = 8 * time.Second

// Provider fetches word explanations from the FreeDictionary API.
type Provider struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, defaultTimeout, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL and
// per-request timeout (for testing and configuration overrides).
func NewProviderWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        logger.With("adapter", "freedict"),
	}
}

// Lookup fetches the dictionary entry for the given term. The term is
// case-folded before the request. A 404 is a successful lookup with
// Found=false: the term's absence is information, not an error. Other
// failures map to the domain error taxonomy: deadline expiry to
// ErrTimedOut, connectivity failures to ErrNetwork, non-2xx statuses to
// UpstreamStatusError, and unparseable bodies to ErrMalformedUpstream.
func (p *Provider) Lookup(ctx context.Context, term string) (*provider.DictionaryResult, error) {
	term = domain.NormalizeText(term)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	reqURL := p.baseURL + "/" + url.PathEscape(term)

	p.log.DebugContext(ctx, "freedict request", slog.String("term", term))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, term)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("term", term), slog.String("error", err.Error()))
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("freedict: lookup %q: %w", term, domain.ErrTimedOut)
		}
		return nil, fmt.Errorf("freedict: lookup %q: %w", term, domain.ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		p.log.DebugContext(ctx, "freedict not found", slog.String("term", term))
		return notFoundResult(term), nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: lookup %q: %w", term,
			&domain.UpstreamStatusError{Source: "dictionary", Status: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", domain.ErrMalformedUpstream)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("freedict: empty entry list: %w", domain.ErrMalformedUpstream)
	}

	result := mapEntry(term, entries[0])

	p.log.DebugContext(ctx, "freedict response",
		slog.String("term", term),
		slog.Int("synonyms", len(result.Synonyms)),
		slog.Int("examples", len(result.Examples)),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, term string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("term", term), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(100 * time.Millisecond)

	resp, err = p.httpClient.Do(req)
	return resp, err
}

func notFoundResult(term string) *provider.DictionaryResult {
	return &provider.DictionaryResult{
		Word:        term,
		Explanation: fmt.Sprintf("%q not found in dictionary. This might be a proper noun, technical term, or misspelling.", term),
		Synonyms:    []string{},
		Found:       false,
	}
}

// mapEntry converts the first API entry into a provider.DictionaryResult.
// Every field of the entry tree is optional; traversal tolerates absence
// at any level. Synonyms are merged from both the meaning level and the
// definition level across all meanings, in discovery order.
func mapEntry(term string, entry apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{
		Word:  term,
		Found: true,
	}
	if entry.Word != "" {
		result.Word = entry.Word
	}

	var definition string
	var synonyms []string
	var examples []string

	for _, meaning := range entry.Meanings {
		synonyms = append(synonyms, meaning.Synonyms...)
		for _, def := range meaning.Definitions {
			if definition == "" && def.Definition != "" {
				definition = def.Definition
			}
			synonyms = append(synonyms, def.Synonyms...)
			if def.Example != "" {
				examples = append(examples, def.Example)
			}
		}
	}

	if definition != "" {
		result.Explanation = capitalize(term) + ": " + definition
	} else {
		result.Explanation = fmt.Sprintf("%q found in dictionary but no definition available.", term)
	}

	result.Synonyms = domain.CleanSynonyms(term, synonyms)
	result.Examples = domain.CleanExamples(term, examples, domain.MaxExamples)
	result.Pronunciation = pickPronunciation(term, entry)

	return result
}

// pickPronunciation prefers the entry-level phonetic, then the first
// phonetics-list entry with text, then a synthesized "/term/" fallback.
func pickPronunciation(term string, entry apiEntry) string {
	if entry.Phonetic != "" {
		return entry.Phonetic
	}
	for _, ph := range entry.Phonetics {
		if ph.Text != "" {
			return ph.Text
		}
	}
	return "/" + term + "/"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
