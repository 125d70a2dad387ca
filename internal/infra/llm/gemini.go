package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Gemini generates analyses through the Gemini API in JSON response mode.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
	log         *zap.Logger
}

func NewGemini(ctx context.Context, cfg config.LLMCfg, log *zap.Logger) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini api key cannot be empty", ErrInvalidConfig)
	}
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if cfg.APIBase != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.APIBase}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("%w: create gemini client: %v", ErrInvalidConfig, err)
	}
	return &Gemini{
		client:      client,
		model:       model,
		temperature: float32(cfg.Temperature),
		log:         log,
	}, nil
}

func (g *Gemini) Name() string  { return "gemini" }
func (g *Gemini) Model() string { return g.model }

func (g *Gemini) GenerateJSON(ctx context.Context, system string, payload map[string]any) (map[string]any, error) {
	user, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	gc := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(g.temperature),
	}
	if system != "" {
		gc.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(string(user)), gc)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			g.log.Error("gemini request failed",
				zap.Int("status_code", apiErr.Code),
				zap.String("status", apiErr.Status),
				zap.String("message", apiErr.Message))
			return nil, &StatusError{Code: apiErr.Code, Body: apiErr.Message}
		}
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: content blocked by safety filters", ErrInvalidResponse)
	}
	return decodeObject([]byte(resp.Text()))
}
