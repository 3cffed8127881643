package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultTimeout = 30 * time.Second

	maxPreviewLength = 200
)

// Assistant is the AI surface the app depends on. Implementations never
// fail: every call yields a usable value.
type Assistant interface {
	DecomposeTitle(ctx context.Context, title string) []string
	Motivation(ctx context.Context, pending, completed int) string
	WeeklySummary(ctx context.Context, completedTasks, habitsMaintained int) string
}

var errNoChoices = errors.New("ai: no choices in response")

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	client  openai.Client
	model   string
	enabled bool
	logger  *zap.Logger
}

var _ Assistant = (*Client)(nil)

func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	enabled := strings.TrimSpace(cfg.APIKey) != ""
	if !enabled {
		logger.Debug("ai_disabled", zap.String("reason", "no api key configured"))
	}
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		option.WithMaxRetries(0),
	)
	return &Client{client: client, model: cfg.Model, enabled: enabled, logger: logger}
}

// Enabled reports whether a credential is configured.
func (c *Client) Enabled() bool { return c.enabled }

func (c *Client) DecomposeTitle(ctx context.Context, title string) []string {
	if !c.enabled {
		return FallbackSubtasks()
	}
	prompt := fmt.Sprintf("Break the task %q into 3 to 5 short, actionable subtasks. "+
		"Respond with a JSON array of strings only.", title)
	content, err := c.complete(ctx, "decompose_title",
		"You split tasks into short imperative steps. Respond with valid JSON only.", prompt)
	if err != nil {
		return FallbackSubtasks()
	}
	titles, err := parseTitles(content)
	if err != nil {
		c.logger.Warn("ai_parse_failed", zap.String("operation", "decompose_title"), zap.Error(err))
		return FallbackSubtasks()
	}
	return titles
}

func (c *Client) Motivation(ctx context.Context, pending, completed int) string {
	if !c.enabled {
		return MotivationNoKey
	}
	prompt := fmt.Sprintf("The user has %d pending tasks and completed %d today. "+
		"Give one short, friendly, motivational sentence (at most 20 words).", pending, completed)
	content, err := c.complete(ctx, "motivation", "You are an upbeat productivity coach.", prompt)
	if err != nil {
		return MotivationFailed
	}
	if strings.TrimSpace(content) == "" {
		return MotivationEmpty
	}
	return content
}

func (c *Client) WeeklySummary(ctx context.Context, completedTasks, habitsMaintained int) string {
	if !c.enabled {
		return SummaryNoKey
	}
	prompt := fmt.Sprintf("This week I completed %d tasks and kept %d habits. "+
		"Give short, constructive feedback in one paragraph.", completedTasks, habitsMaintained)
	content, err := c.complete(ctx, "weekly_summary", "You are an upbeat productivity coach.", prompt)
	if err != nil {
		return SummaryFailed
	}
	if strings.TrimSpace(content) == "" {
		return SummaryEmpty
	}
	return content
}

func (c *Client) complete(ctx context.Context, operation, system, prompt string) (string, error) {
	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
	}
	c.logger.Debug("llm_api_request",
		zap.String("operation", operation),
		zap.String("model", c.model),
		zap.String("prompt_preview", preview(prompt)),
	)
	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, req)
	latency := time.Since(start)
	if err != nil {
		c.logger.Warn("llm_api_error",
			zap.String("operation", operation),
			zap.String("model", c.model),
			zap.Error(err),
			zap.Int64("latency_ms", latency.Milliseconds()),
		)
		return "", fmt.Errorf("%s: %w", operation, err)
	}
	if len(resp.Choices) == 0 {
		c.logger.Warn("llm_api_error", zap.String("operation", operation), zap.Error(errNoChoices))
		return "", errNoChoices
	}
	content := resp.Choices[0].Message.Content
	c.logger.Debug("llm_api_response",
		zap.String("operation", operation),
		zap.String("model", c.model),
		zap.String("response_preview", preview(content)),
		zap.Int64("latency_ms", latency.Milliseconds()),
	)
	return content, nil
}

// parseTitles decodes a JSON string array, tolerating prose or code fences
// around it.
func parseTitles(content string) ([]string, error) {
	raw := strings.TrimSpace(content)
	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		start := strings.Index(raw, "[")
		end := strings.LastIndex(raw, "]")
		if start == -1 || end <= start {
			return nil, fmt.Errorf("no json array in response: %w", err)
		}
		if err := json.Unmarshal([]byte(raw[start:end+1]), &titles); err != nil {
			return nil, fmt.Errorf("decode subtasks: %w", err)
		}
	}
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= maxPreviewLength {
		return s
	}
	return string(r[:maxPreviewLength]) + "..."
}
