// Package cache stores fetched listing pages and live-analysis results so
// repeated scans of the same listing or re-analysis of identical text do not
// redo work.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// PageKey generates a cache key for a fetched listing URL
func PageKey(url string) string {
	return key("page", url)
}

// AnalysisKey generates a cache key for an analyzed text
func AnalysisKey(text string) string {
	return key("analysis", text)
}

func key(kind, payload string) string {
	hash := sha256.Sum256([]byte(payload))
	return "greenlens:v1:" + kind + ":" + hex.EncodeToString(hash[:])
}
