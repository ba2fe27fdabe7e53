// Package cache is the two-layer response cache in front of the LLM gateway.
//
// Layer one is exact-match: a SHA-256 over the canonical query identity keyed
// into redis. Layer two is semantic: prompt embeddings stored alongside the
// cached content, matched by cosine similarity within (tenant, model). Writes
// are best-effort; a cache outage degrades to compute-every-time with warning
// logs, never to request failure.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/bookflow/agentplane/pkg/config"
)

// Embedder produces one vector per input text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// Hit is a cache lookup result.
type Hit struct {
	Content    string  `json:"content"`
	Model      string  `json:"model"`
	Layer      string  `json:"layer"`
	Similarity float64 `json:"similarity,omitempty"`
}

// entry is the stored exact-layer document.
type entry struct {
	Content   string    `json:"content"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// Cache is safe for concurrent use.
type Cache struct {
	rdb      *redis.Client
	embedder Embedder
	cfg      *config.CacheConfig
	logger   *slog.Logger
	group    singleflight.Group
}

// New connects to redis. The embedder may be nil, which disables the
// semantic layer.
func New(cfg *config.CacheConfig, embedder Embedder, logger *slog.Logger) *Cache {
	var password string
	if cfg.RedisPasswordEnv != "" {
		password = os.Getenv(cfg.RedisPasswordEnv)
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: password,
	})
	return &Cache{rdb: rdb, embedder: embedder, cfg: cfg, logger: logger}
}

// NewWithClient wires an existing redis client, used by tests with miniredis.
func NewWithClient(rdb *redis.Client, cfg *config.CacheConfig, embedder Embedder, logger *slog.Logger) *Cache {
	return &Cache{rdb: rdb, embedder: embedder, cfg: cfg, logger: logger}
}

// Ping checks redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the redis connection pool.
func (c *Cache) Close() error {
	return c.rdb.Close()
}

// Get tries the exact layer first, then the semantic layer. A miss returns
// (nil, nil); redis failures are logged and reported as a miss.
func (c *Cache) Get(ctx context.Context, q Query) (*Hit, error) {
	raw, err := c.rdb.Get(ctx, ExactKey(q)).Result()
	switch {
	case err == nil:
		var e entry
		if jsonErr := json.Unmarshal([]byte(raw), &e); jsonErr == nil {
			return &Hit{Content: e.Content, Model: e.Model, Layer: "exact"}, nil
		}
		c.logger.Warn("discarding undecodable cache entry", slog.String("key", ExactKey(q)))
	case err != redis.Nil:
		c.logger.Warn("exact cache lookup failed", slog.String("error", err.Error()))
		return nil, nil
	}

	return c.semanticGet(ctx, q)
}

// Put stores the content in both layers. Best-effort: failures log a warning
// and return; the caller already holds the computed value.
func (c *Cache) Put(ctx context.Context, q Query, content, model string) {
	doc, err := json.Marshal(entry{Content: content, Model: model, CreatedAt: time.Now().UTC()})
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, ExactKey(q), doc, c.cfg.ExactTTL).Err(); err != nil {
		c.logger.Warn("exact cache write failed", slog.String("error", err.Error()))
	}
	c.semanticPut(ctx, q, content, model)
}

// Coalesce guarantees at most one in-flight compute per exact key: concurrent
// callers with the same key share the first call's result. The shared return
// reports whether this caller received another caller's result.
func (c *Cache) Coalesce(key string, compute func() (any, error)) (any, bool, error) {
	v, err, shared := c.group.Do(key, compute)
	return v, shared, err
}

// Invalidate removes a tenant's cached responses from both layers. The scan
// is bounded per invocation; a very large tenant may need repeated calls.
func (c *Cache) Invalidate(ctx context.Context, tenantID string) (int, error) {
	removed := 0
	for _, pattern := range []string{exactPrefix(tenantID), semanticTenantPrefix(tenantID)} {
		n, err := c.deleteByPattern(ctx, pattern, c.cfg.InvalidateScanLimit-removed)
		removed += n
		if err != nil {
			return removed, err
		}
		if removed >= c.cfg.InvalidateScanLimit {
			break
		}
	}
	return removed, nil
}

func (c *Cache) deleteByPattern(ctx context.Context, pattern string, limit int) (int, error) {
	if limit <= 0 {
		return 0, nil
	}
	keys, err := c.scan(ctx, pattern, limit)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return 0, err
	}
	return len(keys), nil
}

// scan collects up to limit keys matching the glob pattern.
func (c *Cache) scan(ctx context.Context, pattern string, limit int) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return keys, err
		}
		keys = append(keys, batch...)
		if len(keys) >= limit {
			return keys[:limit], nil
		}
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}
