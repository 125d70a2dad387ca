package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/llm"
	"github.com/Shreyaj-Padigala/ProSolve/internal/pkg/metrics"
	"go.uber.org/zap"
)

type AnalysisService interface {
	Analyze(ctx context.Context, scenario string, extra map[string]any) (map[string]any, error)
	Calls() int64
}

// AnalysisCache holds real provider results. Mock results are never cached.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (map[string]any, bool, error)
	Set(ctx context.Context, key string, v map[string]any) error
}

// CacheKeyFunc derives a cache key for one analysis request.
type CacheKeyFunc func(provider, model, scenario string, extra map[string]any) (string, error)

type AnalysisOptions struct {
	MockOnFail bool
	Cache      AnalysisCache
	CacheKey   CacheKeyFunc
}

type analysisService struct {
	provider llm.Provider
	fallback llm.Provider
	calls    *metrics.Counter
	log      *zap.Logger
	opts     AnalysisOptions
}

func NewAnalysisService(provider, fallback llm.Provider, calls *metrics.Counter, log *zap.Logger, opts AnalysisOptions) AnalysisService {
	return &analysisService{
		provider: provider,
		fallback: fallback,
		calls:    calls,
		log:      log,
		opts:     opts,
	}
}

func (s *analysisService) Calls() int64 { return s.calls.Load() }

// Analyze runs the configured provider. On any provider failure it falls
// back to the mock generator when MockOnFail is set; otherwise the failure
// is returned as a *GatewayError.
func (s *analysisService) Analyze(ctx context.Context, scenario string, extra map[string]any) (map[string]any, error) {
	n := s.calls.Inc()

	scenario = strings.TrimSpace(scenario)
	if scenario == "" {
		return nil, invalid("scenario is required")
	}
	if extra == nil {
		extra = map[string]any{}
	}
	payload := map[string]any{"scenario": scenario, "context": extra}

	log := s.log.With(
		zap.Int64("call", n),
		zap.String("provider", s.provider.Name()),
		zap.String("model", s.provider.Model()))

	key := s.cacheKey(scenario, extra)
	if key != "" {
		if hit, ok, err := s.opts.Cache.Get(ctx, key); err != nil {
			log.Warn("analysis cache get", zap.Error(err))
		} else if ok {
			log.Debug("analysis cache hit")
			return hit, nil
		}
	}

	result, err := s.provider.GenerateJSON(ctx, llm.SimulateSystemPrompt, payload)
	if err == nil {
		log.Info("analysis generated", zap.Int("fields", len(result)))
		if key != "" {
			if err := s.opts.Cache.Set(ctx, key, result); err != nil {
				log.Warn("analysis cache set", zap.Error(err))
			}
		}
		return result, nil
	}

	gwErr := &GatewayError{Detail: err.Error(), Err: err}
	var se *llm.StatusError
	if errors.As(err, &se) {
		gwErr.Status = se.Code
		gwErr.Detail = se.Body
	}
	log.Warn("analysis provider failed", zap.Int("status", gwErr.Status), zap.Error(err))

	if !s.opts.MockOnFail {
		return nil, gwErr
	}

	mock, mockErr := s.fallback.GenerateJSON(ctx, "", payload)
	if mockErr != nil {
		log.Error("mock fallback failed", zap.Error(mockErr))
		return nil, &GatewayError{
			Status:        gwErr.Status,
			Detail:        gwErr.Detail,
			FallbackTried: true,
			Err:           errors.Join(err, mockErr),
		}
	}
	log.Info("analysis served by mock fallback")
	return mock, nil
}

// cacheKey is empty when caching is off or the provider is the mock.
func (s *analysisService) cacheKey(scenario string, extra map[string]any) string {
	if s.opts.Cache == nil || s.opts.CacheKey == nil || llm.IsMock(s.provider) {
		return ""
	}
	key, err := s.opts.CacheKey(s.provider.Name(), s.provider.Model(), scenario, extra)
	if err != nil {
		s.log.Warn("analysis cache key", zap.Error(err))
		return ""
	}
	return key
}
