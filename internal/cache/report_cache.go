package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/DjordjeVuckovic/news-verifier/internal/domain"
)

const keyPrefix = "verify:"

// ReportCache memoizes analysis reports in Redis, keyed by a hash of the
// submitted title and content. A nil client degrades to a no-op so the
// service keeps working without Redis.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(ctx context.Context, redisURL string, ttl time.Duration) *ReportCache {
	if redisURL == "" {
		slog.Warn("REDIS_URL not set, running without report cache")
		return &ReportCache{ttl: ttl}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, running without report cache", "error", err)
		return &ReportCache{ttl: ttl}
	}

	slog.Info("report cache connected", "ttl", ttl)
	return &ReportCache{client: client, ttl: ttl}
}

// Key derives the cache key for a request. Identical title and content
// always map to the same key.
func Key(title, content string) string {
	sum := sha256.Sum256([]byte(title + "\x00" + content))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached report for the request, or nil on a miss. Cache
// errors are logged and treated as misses.
func (c *ReportCache) Get(ctx context.Context, title, content string) *domain.AnalysisReport {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := c.client.Get(ctx, Key(title, content)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		slog.Error("cache get failed", "error", err)
		return nil
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		slog.Error("cache entry corrupt, dropping", "error", err)
		return nil
	}
	report.Cached = true
	return &report
}

// Set stores the report under the request's key for the configured TTL.
func (c *ReportCache) Set(ctx context.Context, title, content string, report *domain.AnalysisReport) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(report)
	if err != nil {
		slog.Error("cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, Key(title, content), raw, c.ttl).Err(); err != nil {
		slog.Error("cache set failed", "error", err)
	}
}

func (c *ReportCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
