package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"
)

// semanticEntry pairs a cached response with the prompt embedding it was
// stored under.
type semanticEntry struct {
	Content   string    `json:"content"`
	Model     string    `json:"model"`
	Vector    []float64 `json:"vector"`
	CreatedAt time.Time `json:"created_at"`
}

// semanticGet embeds the prompt and scans the tenant+model neighborhood for
// the nearest stored vector. A hit requires cosine similarity at or above the
// configured threshold. Any failure along the way degrades to a miss.
func (c *Cache) semanticGet(ctx context.Context, q Query) (*Hit, error) {
	if c.embedder == nil {
		return nil, nil
	}

	vectors, err := c.embedder.Embed(ctx, []string{q.Prompt})
	if err != nil || len(vectors) != 1 {
		if err != nil {
			c.logger.Warn("semantic lookup embedding failed", slog.String("error", err.Error()))
		}
		return nil, nil
	}
	probe := vectors[0]

	keys, err := c.scan(ctx, semanticPrefix(q.TenantID, q.Model), c.cfg.InvalidateScanLimit)
	if err != nil {
		c.logger.Warn("semantic cache scan failed", slog.String("error", err.Error()))
		return nil, nil
	}
	if len(keys) == 0 {
		return nil, nil
	}

	docs, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn("semantic cache fetch failed", slog.String("error", err.Error()))
		return nil, nil
	}

	var best *Hit
	for _, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			continue
		}
		var e semanticEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		sim := cosine(probe, e.Vector)
		if sim < c.cfg.SimilarityThreshold {
			continue
		}
		if best == nil || sim > best.Similarity {
			best = &Hit{Content: e.Content, Model: e.Model, Layer: "semantic", Similarity: sim}
		}
	}
	return best, nil
}

// semanticPut stores the prompt embedding alongside the content. Best-effort.
func (c *Cache) semanticPut(ctx context.Context, q Query, content, model string) {
	if c.embedder == nil {
		return
	}

	vectors, err := c.embedder.Embed(ctx, []string{q.Prompt})
	if err != nil || len(vectors) != 1 {
		if err != nil {
			c.logger.Warn("semantic cache embedding failed", slog.String("error", err.Error()))
		}
		return
	}

	doc, err := json.Marshal(semanticEntry{
		Content:   content,
		Model:     model,
		Vector:    vectors[0],
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return
	}
	key := semanticKey(q, queryHash(q))
	if err := c.rdb.Set(ctx, key, doc, c.cfg.SemanticTTL).Err(); err != nil {
		c.logger.Warn("semantic cache write failed", slog.String("error", err.Error()))
	}
}

// cosine returns the cosine similarity of two vectors, 0 when shapes differ
// or either vector is zero.
func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
