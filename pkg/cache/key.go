package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
)

// Query identifies one cacheable completion request.
type Query struct {
	TenantID    string
	Prompt      string
	System      string
	Model       string
	Temperature float64
}

// canonicalKey is the exact-match identity of a query. Field order is fixed
// so the JSON encoding is canonical; temperature is bucketed to one decimal
// so near-identical sampling settings share an entry.
type canonicalKey struct {
	Prompt            string  `json:"prompt"`
	System            string  `json:"system"`
	Model             string  `json:"model"`
	TemperatureBucket float64 `json:"temperature_bucket"`
	TenantID          string  `json:"tenant_id"`
}

// ExactKey returns the redis key for the exact-match layer.
func ExactKey(q Query) string {
	return fmt.Sprintf("cache:exact:%s:%s", q.TenantID, queryHash(q))
}

func queryHash(q Query) string {
	payload, _ := json.Marshal(canonicalKey{
		Prompt:            q.Prompt,
		System:            q.System,
		Model:             q.Model,
		TemperatureBucket: bucketTemperature(q.Temperature),
		TenantID:          q.TenantID,
	})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func bucketTemperature(t float64) float64 {
	return math.Round(t*10) / 10
}

func exactPrefix(tenantID string) string {
	return fmt.Sprintf("cache:exact:%s:*", tenantID)
}

func semanticKey(q Query, hash string) string {
	return fmt.Sprintf("cache:sem:%s:%s:%s", q.TenantID, q.Model, hash)
}

func semanticPrefix(tenantID, model string) string {
	return fmt.Sprintf("cache:sem:%s:%s:*", tenantID, model)
}

func semanticTenantPrefix(tenantID string) string {
	return fmt.Sprintf("cache:sem:%s:*", tenantID)
}
