// Package gemini implements the analysis oracles on top of the Google GenAI API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/Ravipaygan296/talentmatch-ai/internal/logger"
)

const (
	defaultModel          = "gemini-2.5-flash"
	defaultEmbeddingModel = "gemini-embedding-001"
	defaultMaxRetries     = 2
	defaultMaxLogLength   = 200

	// Quota errors asking to wait longer than this are not worth retrying
	// inside a single request.
	maxRetryDelay = 30 * time.Second
)

var sleep = time.Sleep

// models is the subset of the GenAI SDK used by the client. It exists so
// tests can substitute a fake backend.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Config holds tunables for the Gemini-backed oracles.
type Config struct {
	Model          string
	EmbeddingModel string
	MaxRetries     int
	MaxLogLength   int
}

// Client wraps the GenAI SDK with bounded retries and request logging. A
// single client is created at startup and shared by all oracles.
type Client struct {
	models     models
	model      string
	embedModel string
	maxRetries int
	maxLogLen  int
	logger     *zap.Logger
}

// NewClient creates a Client configured for the Gemini API backend.
func NewClient(ctx context.Context, apiKey string, cfg Config, log *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	embedModel := strings.TrimSpace(cfg.EmbeddingModel)
	if embedModel == "" {
		embedModel = defaultEmbeddingModel
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	maxLogLen := cfg.MaxLogLength
	if maxLogLen <= 0 {
		maxLogLen = defaultMaxLogLength
	}

	return &Client{
		models:     client.Models,
		model:      model,
		embedModel: embedModel,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLen,
		logger:     logger.WithOracleFields(log, "gemini", model),
	}, nil
}

// Model returns the generative model identifier.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// generate sends the prompt to the generative model and returns the combined
// textual response, retrying transient API errors.
func (c *Client) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if c == nil || c.models == nil {
		return "", errors.New("gemini client is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	c.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", len(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, c.maxLogLen)),
	)

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
		if err == nil {
			output := collectText(resp)
			if output == "" {
				return "", errors.New("gemini api returned empty response")
			}

			c.logger.Debug("gemini generate content response",
				zap.Int("response_length", len(output)),
				zap.String("response_preview", logger.TruncateForLog(output, c.maxLogLen)),
			)
			return output, nil
		}

		lastErr = err
		if attempt == c.maxRetries || !retryable(err) {
			break
		}

		c.logger.Warn("retrying gemini call after transient error",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		sleep(time.Duration(attempt) * time.Second)
	}

	return "", fmt.Errorf("generate content: %w", lastErr)
}

// embed returns the embedding vector for the given text.
func (c *Client) embed(ctx context.Context, text string) ([]float64, error) {
	if c == nil || c.models == nil {
		return nil, errors.New("gemini client is not initialized")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text must not be empty")
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		resp, err := c.models.EmbedContent(ctx, c.embedModel, genai.Text(text), nil)
		if err == nil {
			if resp == nil || len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
				return nil, errors.New("gemini api returned empty embedding")
			}

			values := resp.Embeddings[0].Values
			vector := make([]float64, len(values))
			for i, v := range values {
				vector[i] = float64(v)
			}
			return vector, nil
		}

		lastErr = err
		if attempt == c.maxRetries || !retryable(err) {
			break
		}

		c.logger.Warn("retrying gemini embedding after transient error",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		sleep(time.Duration(attempt) * time.Second)
	}

	return nil, fmt.Errorf("embed content: %w", lastErr)
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	return strings.TrimSpace(builder.String())
}

var retryDelayRe = regexp.MustCompile(`retry after (\d+)`)

func retryable(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	if apiErr.Code == http.StatusTooManyRequests {
		// Do not wait out long quota delays inside a request.
		if m := retryDelayRe.FindStringSubmatch(strings.ToLower(apiErr.Message)); m != nil {
			if secs, convErr := strconv.Atoi(m[1]); convErr == nil {
				return time.Duration(secs)*time.Second <= maxRetryDelay
			}
		}
		return true
	}

	return apiErr.Code >= http.StatusInternalServerError
}
