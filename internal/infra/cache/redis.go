package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// New returns a client for cfg.Redis, or nil when no address is configured.
func New(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}

const analysisPrefix = "prosolve:analysis:"

// AnalysisCache stores provider results keyed by AnalysisKey.
type AnalysisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnalysisCache(rdb *redis.Client, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached result for key; ok is false on a miss.
func (c *AnalysisCache) Get(ctx context.Context, key string) (map[string]any, bool, error) {
	raw, err := c.rdb.Get(ctx, analysisPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var out map[string]any
	if err := sonic.UnmarshalString(raw, &out); err != nil {
		return nil, false, fmt.Errorf("decode cached analysis: %w", err)
	}
	return out, true, nil
}

func (c *AnalysisCache) Set(ctx context.Context, key string, v map[string]any) error {
	raw, err := sonic.MarshalString(v)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	if err := c.rdb.Set(ctx, analysisPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// AnalysisKey hashes everything that determines a provider answer. Map keys
// are sorted before hashing, so equal contexts give equal keys.
func AnalysisKey(provider, model, scenario string, extra map[string]any) (string, error) {
	ctxJSON, err := sonic.ConfigStd.Marshal(extra)
	if err != nil {
		return "", fmt.Errorf("encode context: %w", err)
	}
	h := sha256.New()
	for _, part := range []string{strings.ToLower(provider), model, strings.TrimSpace(scenario)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	h.Write(ctxJSON)
	return hex.EncodeToString(h.Sum(nil)), nil
}
