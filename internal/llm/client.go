package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mtorres/palabras/internal/config"
	"github.com/mtorres/palabras/internal/logger"
	"github.com/mtorres/palabras/models"
)

// Classifier is the external language-model dependency of the curated word
// intake. Both calls are single batched requests; neither is retried within
// a user request.
type Classifier interface {
	// ValidateWords asks the model for a per-word accept/reject verdict.
	// Returns one verdict per input word, in input order.
	ValidateWords(ctx context.Context, words []string) ([]models.WordVerdict, error)

	// ClassifyWords asks the model to translate and categorize the words.
	// Malformed records are dropped; out-of-set categories are healed to
	// the default rather than rejected.
	ClassifyWords(ctx context.Context, words []string) ([]models.ClassifiedWord, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// client talks to an OpenAI-compatible chat-completions endpoint.
type client struct {
	http   *resty.Client
	model  string
	logger *logger.Logger
}

// NewClient constructs a [Classifier] from the classifier configuration.
func NewClient(cfg config.Classifier, log *logger.Logger) Classifier {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &client{
		http:   cli,
		model:  cfg.Model,
		logger: log,
	}
}

// ValidateWords implements [Classifier]. The prompt asks for one verdict per
// word; a response with a different word count is unusable because verdicts
// could not be attributed safely.
func (c *client) ValidateWords(ctx context.Context, words []string) ([]models.WordVerdict, error) {
	if len(words) == 0 {
		return nil, nil
	}
	log := logger.FromContext(ctx)

	content, err := c.complete(ctx, validationPrompt(words), 0.1)
	if err != nil {
		return nil, err
	}

	verdicts, err := parseVerdicts(content)
	if err != nil {
		log.Err(err).Str("func", "*client.ValidateWords").Msg("error parsing validation response")
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	if len(verdicts) != len(words) {
		log.Error().Str("func", "*client.ValidateWords").
			Int("want", len(words)).Int("got", len(verdicts)).
			Msg("verdict count mismatch")
		return nil, fmt.Errorf("%w: expected %d verdicts, got %d", ErrBadResponse, len(words), len(verdicts))
	}

	return verdicts, nil
}

// ClassifyWords implements [Classifier].
func (c *client) ClassifyWords(ctx context.Context, words []string) ([]models.ClassifiedWord, error) {
	if len(words) == 0 {
		return nil, nil
	}
	log := logger.FromContext(ctx)

	content, err := c.complete(ctx, classificationPrompt(words), 0.3)
	if err != nil {
		return nil, err
	}

	classified, err := parseClassifiedWords(content)
	if err != nil {
		log.Err(err).Str("func", "*client.ClassifyWords").Msg("error parsing classification response")
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	return classified, nil
}

// complete sends one chat-completion call and returns the raw content of the
// first choice.
func (c *client) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	log := logger.FromContext(ctx)

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   4000,
		Temperature: temperature,
	}

	var parsed chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&parsed).
		Post("/v1/chat/completions")
	if err != nil {
		log.Err(err).Str("func", "*client.complete").Msg("classifier call failed")
		return "", categorizeTransportError(err)
	}

	if resp.IsError() {
		log.Error().Str("func", "*client.complete").
			Int("status", resp.StatusCode()).
			Msg("classifier returned error status")
		return "", categorizeStatus(resp.StatusCode())
	}

	if parsed.Error != nil {
		log.Error().Str("func", "*client.complete").Str("provider_error", parsed.Error.Message).Msg("classifier returned error payload")
		return "", fmt.Errorf("%w: %s", ErrBadResponse, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrBadResponse)
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func categorizeTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

func categorizeStatus(status int) error {
	switch status {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthFailed
	default:
		return fmt.Errorf("%w: status %d", ErrBadResponse, status)
	}
}

func validationPrompt(words []string) string {
	var list strings.Builder
	for i, word := range words {
		fmt.Fprintf(&list, "%d. %s\n", i+1, word)
	}

	return fmt.Sprintf(`You are a Spanish vocabulary validation assistant.

For each word or phrase below, decide whether it is a real Spanish word or phrase suitable for a vocabulary list.

Words to validate:
%s
Return ONLY valid JSON in this exact format (no markdown, no explanation):
[
  {
    "word": "word",
    "valid": true,
    "reason": ""
  }
]

Rules:
- Keep original text exactly as provided
- Mark gibberish, non-Spanish words, and random characters as invalid with a short reason
- Return one entry per input word, in the same order`, list.String())
}

func classificationPrompt(words []string) string {
	var list strings.Builder
	for i, word := range words {
		fmt.Fprintf(&list, "%d. %s\n", i+1, word)
	}

	return fmt.Sprintf(`You are a Spanish-English vocabulary processing assistant.

For each Spanish word or phrase below, provide:
1. English translation
2. Word type: %s
3. 1-3 relevant themes from: %s

Spanish words to process:
%s
Return ONLY valid JSON in this exact format (no markdown, no explanation):
[
  {
    "spanish": "word",
    "english": "translation",
    "word_type": "type",
    "themes": ["theme1", "theme2"]
  }
]

Rules:
- Keep original Spanish text exactly as provided (including / for gender variations)
- Provide natural English translations
- For phrases (2+ words), use word_type "phrase"
- Assign 1-3 most relevant themes (max 3)
- If unsure about theme, use "other"
- Return results in same order as input`,
		strings.Join(models.WordTypes, ", "),
		strings.Join(models.Themes, ", "),
		list.String())
}
