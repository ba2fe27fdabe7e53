package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookflow/agentplane/pkg/config"
)

type stubEmbedder struct {
	vectors map[string][]float64
	err     error
}

func (s *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float64, len(texts))
	for i, t := range texts {
		v, ok := s.vectors[t]
		if !ok {
			v = []float64{0, 0, 1}
		}
		out[i] = v
	}
	return out, nil
}

func newTestCache(t *testing.T, embedder Embedder) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.DefaultCacheConfig()
	cfg.RedisAddr = mr.Addr()
	return NewWithClient(rdb, cfg, embedder, slog.Default()), mr
}

func TestExactLayer_PutGet(t *testing.T) {
	c, _ := newTestCache(t, nil)
	ctx := t.Context()

	q := Query{TenantID: "t1", Prompt: "price of haircut", Model: "m1", Temperature: 0.7}

	hit, err := c.Get(ctx, q)
	require.NoError(t, err)
	assert.Nil(t, hit)

	c.Put(ctx, q, "a haircut costs 500", "m1")

	hit, err = c.Get(ctx, q)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "a haircut costs 500", hit.Content)
	assert.Equal(t, "exact", hit.Layer)

	// Identical queries return byte-identical content.
	again, err := c.Get(ctx, q)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, hit.Content, again.Content)
}

func TestExactKey_TemperatureBucketing(t *testing.T) {
	base := Query{TenantID: "t1", Prompt: "p", Model: "m", Temperature: 0.70}

	near := base
	near.Temperature = 0.71
	assert.Equal(t, ExactKey(base), ExactKey(near))

	far := base
	far.Temperature = 0.9
	assert.NotEqual(t, ExactKey(base), ExactKey(far))
}

func TestExactKey_TenantIsolation(t *testing.T) {
	a := Query{TenantID: "t1", Prompt: "p", Model: "m"}
	b := Query{TenantID: "t2", Prompt: "p", Model: "m"}
	assert.NotEqual(t, ExactKey(a), ExactKey(b))
}

func TestSemanticLayer(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float64{
		"how much is a haircut":   {1, 0, 0},
		"what does a haircut cost": {0.99, 0.141, 0},
		"book me a massage":       {0, 1, 0},
	}}
	c, _ := newTestCache(t, embedder)
	ctx := t.Context()

	stored := Query{TenantID: "t1", Prompt: "how much is a haircut", Model: "m1"}
	c.Put(ctx, stored, "a haircut costs 500", "m1")

	// A paraphrase above the similarity threshold hits the semantic layer.
	paraphrase := Query{TenantID: "t1", Prompt: "what does a haircut cost", Model: "m1"}
	hit, err := c.Get(ctx, paraphrase)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "semantic", hit.Layer)
	assert.Equal(t, "a haircut costs 500", hit.Content)
	assert.GreaterOrEqual(t, hit.Similarity, c.cfg.SimilarityThreshold)

	// An unrelated prompt misses.
	unrelated := Query{TenantID: "t1", Prompt: "book me a massage", Model: "m1"}
	hit, err = c.Get(ctx, unrelated)
	require.NoError(t, err)
	assert.Nil(t, hit)

	// Same prompt, different tenant: no cross-tenant hits.
	otherTenant := Query{TenantID: "t2", Prompt: "what does a haircut cost", Model: "m1"}
	hit, err = c.Get(ctx, otherTenant)
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestSemanticLayer_EmbedderFailureDegradesToMiss(t *testing.T) {
	c, _ := newTestCache(t, &stubEmbedder{err: fmt.Errorf("embedding endpoint down")})
	ctx := t.Context()

	q := Query{TenantID: "t1", Prompt: "anything", Model: "m1"}
	hit, err := c.Get(ctx, q)
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestCoalesce_SingleFlight(t *testing.T) {
	c, _ := newTestCache(t, nil)

	var calls atomic.Int32
	compute := func() (any, error) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		return "computed", nil
	}

	const n = 10
	var wg sync.WaitGroup
	results := make([]any, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _, err := c.Coalesce("same-key", compute)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, "computed", v)
	}
}

func TestInvalidate(t *testing.T) {
	c, _ := newTestCache(t, nil)
	ctx := t.Context()

	for i := 0; i < 5; i++ {
		q := Query{TenantID: "t1", Prompt: fmt.Sprintf("prompt %d", i), Model: "m1"}
		c.Put(ctx, q, "cached", "m1")
	}
	other := Query{TenantID: "t2", Prompt: "prompt", Model: "m1"}
	c.Put(ctx, other, "kept", "m1")

	removed, err := c.Invalidate(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 5, removed)

	hit, err := c.Get(ctx, Query{TenantID: "t1", Prompt: "prompt 0", Model: "m1"})
	require.NoError(t, err)
	assert.Nil(t, hit)

	hit, err = c.Get(ctx, other)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "kept", hit.Content)
}

func TestInvalidate_BoundedScan(t *testing.T) {
	c, _ := newTestCache(t, nil)
	c.cfg.InvalidateScanLimit = 3
	ctx := t.Context()

	for i := 0; i < 10; i++ {
		q := Query{TenantID: "t1", Prompt: fmt.Sprintf("prompt %d", i), Model: "m1"}
		c.Put(ctx, q, "cached", "m1")
	}

	removed, err := c.Invalidate(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
}

func TestGet_RedisDownDegradesToMiss(t *testing.T) {
	c, mr := newTestCache(t, nil)
	ctx := t.Context()

	q := Query{TenantID: "t1", Prompt: "p", Model: "m1"}
	c.Put(ctx, q, "cached", "m1")
	mr.Close()

	hit, err := c.Get(ctx, q)
	require.NoError(t, err)
	assert.Nil(t, hit)

	// Writes against a dead redis are swallowed with a warning.
	c.Put(ctx, q, "cached again", "m1")
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float64{1, 0}, []float64{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosine([]float64{1, 0}, []float64{1, 0, 0}))
	assert.Equal(t, 0.0, cosine(nil, nil))
	assert.Equal(t, 0.0, cosine([]float64{0, 0}, []float64{0, 0}))
}

func TestExpiry(t *testing.T) {
	c, mr := newTestCache(t, nil)
	ctx := t.Context()

	q := Query{TenantID: "t1", Prompt: "p", Model: "m1"}
	c.Put(ctx, q, "cached", "m1")

	mr.FastForward(c.cfg.ExactTTL + time.Second)

	hit, err := c.Get(ctx, q)
	require.NoError(t, err)
	assert.Nil(t, hit)
}
