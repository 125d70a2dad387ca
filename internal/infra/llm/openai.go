package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// knownBases holds default endpoints for providers that speak the OpenAI
// chat completions dialect.
var knownBases = map[string]string{
	"openai":     "https://api.openai.com/v1",
	"groq":       "https://api.groq.com/openai/v1",
	"openrouter": "https://openrouter.ai/api/v1",
	"together":   "https://api.together.xyz/v1",
}

// OpenAI is a client for any OpenAI-compatible chat completions API.
type OpenAI struct {
	name        string
	BaseURL     string
	model       string
	apiKey      string
	temperature float64
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

func NewOpenAI(cfg config.LLMCfg, log *zap.Logger) (*OpenAI, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	base := strings.TrimRight(cfg.APIBase, "/")
	if base == "" {
		base = knownBases[name]
	}
	if base == "" {
		return nil, fmt.Errorf("%w: provider %q needs an api base", ErrInvalidConfig, cfg.Provider)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: provider %q needs a model", ErrInvalidConfig, cfg.Provider)
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAI{
		name:        name,
		BaseURL:     base,
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		temperature: cfg.Temperature,
		HTTPClient:  &http.Client{Timeout: timeout},
		Logger:      log,
	}, nil
}

func (c *OpenAI) Name() string  { return c.name }
func (c *OpenAI) Model() string { return c.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateJSON posts one chat completion in JSON mode and decodes the first
// choice as an object.
func (c *OpenAI) GenerateJSON(ctx context.Context, system string, payload map[string]any) (map[string]any, error) {
	user, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	body, err := sonic.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: string(user)},
		},
		Temperature:    c.temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.Logger.Error("chat completion request failed",
			zap.String("provider", c.name),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", truncate(string(respBody), 512)))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	var out chatResponse
	if err := sonic.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", ErrInvalidResponse, err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrInvalidResponse)
	}
	return decodeObject([]byte(out.Choices[0].Message.Content))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
