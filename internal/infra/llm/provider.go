// Package llm talks to structured-generation providers. Every provider
// takes a system prompt plus a JSON payload and must answer with one JSON
// object.
package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

var (
	ErrInvalidConfig   = errors.New("llm: invalid config")
	ErrInvalidResponse = errors.New("llm: invalid response")
)

type Provider interface {
	// Name is the configured provider name, "mock" for the local generator.
	Name() string
	Model() string
	GenerateJSON(ctx context.Context, system string, payload map[string]any) (map[string]any, error)
}

// StatusError is a non-2xx answer from the upstream API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm: upstream status %d: %s", e.Code, e.Body)
}

// IsMock reports whether p is the local deterministic generator.
func IsMock(p Provider) bool {
	_, ok := p.(*Mock)
	return ok
}

// New selects a provider by cfg.Provider: "" or "mock" is the local
// generator, "gemini" uses the Gemini API, anything else is treated as an
// OpenAI-compatible chat completions endpoint.
func New(ctx context.Context, cfg config.LLMCfg, log *zap.Logger) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "mock":
		return NewMock(), nil
	case "gemini":
		return NewGemini(ctx, cfg, log)
	default:
		return NewOpenAI(cfg, log)
	}
}

// decodeObject parses raw model output, tolerating a markdown code fence
// around the JSON.
func decodeObject(raw []byte) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.HasPrefix(raw, []byte("```")) {
		raw = bytes.TrimPrefix(raw, []byte("```json"))
		raw = bytes.TrimPrefix(raw, []byte("```"))
		raw = bytes.TrimSuffix(bytes.TrimSpace(raw), []byte("```"))
		raw = bytes.TrimSpace(raw)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty content", ErrInvalidResponse)
	}

	var v any
	if err := sonic.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: not JSON: %v", ErrInvalidResponse, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object, got %T", ErrInvalidResponse, v)
	}
	return obj, nil
}
