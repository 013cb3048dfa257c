package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

const defaultBaseURL = "https://api.openai.com/v1"

const defaultTimeout = 10 * time.Second

// Completion presets. Each capability call carries its own token limit
// and temperature.
const (
	explainMaxTokens   = 280
	explainTemperature = 0.2

	synonymMaxTokens   = 50
	synonymTemperature = 0.3

	exampleMaxTokens   = 150
	exampleTemperature = 0.5
)

// maxGeneratedExamples bounds the example-generation call, which asks for
// 2-3 sentences.
const maxGeneratedExamples = 3

var numberedPrefix = regexp.MustCompile(`^\d+[.)]`)

// Client calls a chat-completions API for key-gated word explanations.
// The API key is supplied per call by the orchestrator; it is never
// stored or logged here.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client against the default completions endpoint.
func NewClient(logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, defaultTimeout, logger)
}

// NewClientWithURL creates a Client with a custom base URL and per-request
// timeout (for testing and configuration overrides).
func NewClientWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        logger.With("adapter", "openai"),
	}
}

// Explain requests a context-aware explanation of the term. Unlike the
// auxiliary calls, failures propagate so the orchestrator can fall back
// to the dictionary source.
func (c *Client) Explain(ctx context.Context, key, model, term, pageContext string, style domain.ExplanationStyle) (string, error) {
	prompt := buildExplainPrompt(term, pageContext, style)
	text, err := c.complete(ctx, key, model, prompt, explainMaxTokens, explainTemperature)
	if err != nil {
		return "", fmt.Errorf("openai: explain %q: %w", term, err)
	}
	return text, nil
}

// Synonyms requests a comma-separated synonym list for the term. Any
// failure degrades to an empty slice; synonyms are never worth failing
// a request over.
func (c *Client) Synonyms(ctx context.Context, key, model, term string) []string {
	text, err := c.complete(ctx, key, model, buildSynonymPrompt(term), synonymMaxTokens, synonymTemperature)
	if err != nil {
		c.log.WarnContext(ctx, "synonym call failed", slog.String("term", term), slog.String("error", err.Error()))
		return []string{}
	}
	return domain.CleanSynonyms(term, strings.Split(text, ","))
}

// GenerateExamples requests example sentences that literally use the
// term. Numbered-list artifacts and meta-text are dropped; any failure
// degrades to an empty slice.
func (c *Client) GenerateExamples(ctx context.Context, key, model, term string) []string {
	text, err := c.complete(ctx, key, model, buildExamplePrompt(term), exampleMaxTokens, exampleTemperature)
	if err != nil {
		c.log.WarnContext(ctx, "example call failed", slog.String("term", term), slog.String("error", err.Error()))
		return []string{}
	}

	lines := strings.Split(text, "\n")
	candidates := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || numberedPrefix.MatchString(line) {
			continue
		}
		candidates = append(candidates, line)
	}

	examples := domain.CleanExamples(term, candidates, maxGeneratedExamples)
	if examples == nil {
		return []string{}
	}
	return examples
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete executes one chat-completion round trip and returns the
// trimmed message content of the first choice.
func (c *Client) complete(ctx context.Context, key, model, prompt string, maxTokens int, temperature float64) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", domain.ErrMissingCredential
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", domain.ErrTimedOut
		}
		return "", domain.ErrNetwork
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.UpstreamStatusError{Source: "llm", Status: resp.StatusCode}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", domain.ErrMalformedUpstream
	}
	if len(parsed.Choices) == 0 {
		return "", domain.ErrMalformedUpstream
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", domain.ErrMalformedUpstream
	}
	return text, nil
}
