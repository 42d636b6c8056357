// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package api

import (
	"net/http"

	"github.com/tomtom215/basketlytics/internal/cache"
	"github.com/tomtom215/basketlytics/internal/metrics"
	"github.com/tomtom215/basketlytics/internal/models"
)

const (
	// cacheHeader reports HIT or MISS on cacheable endpoints.
	cacheHeader = "X-Cache"

	cacheNamespaceAnalyze = "analyze"
	cacheNamespaceDaily   = "daily"
)

// lookupCached returns the cached response for req and the key to store a
// fresh response under. The key is empty when c is nil or req cannot be
// encoded, in which case nothing is cached.
func lookupCached[V any](w http.ResponseWriter, c *cache.LRU[V], namespace string, req interface{}) (string, V, bool) {
	var zero V
	if c == nil {
		return "", zero, false
	}

	key, err := cache.GenerateKey(namespace, req)
	if err != nil {
		return "", zero, false
	}

	resp, hit := c.Get(key)
	metrics.RecordCacheLookup(namespace, hit, c.Len())
	if hit {
		w.Header().Set(cacheHeader, "HIT")
		return key, resp, true
	}
	w.Header().Set(cacheHeader, "MISS")
	return key, zero, false
}

// storeCached saves resp under a key from lookupCached.
func storeCached[V any](c *cache.LRU[V], key string, resp V) {
	if c == nil || key == "" {
		return
	}
	c.Add(key, resp)
}

// SweepCaches removes expired responses from both caches and returns how
// many were removed. It is a no-op when caching is disabled.
func (h *Handler) SweepCaches() int {
	if h.analyzeCache == nil {
		return 0
	}
	removed := h.analyzeCache.CleanupExpired() + h.dailyCache.CleanupExpired()
	metrics.RecordCacheSize(cacheNamespaceAnalyze, h.analyzeCache.Len())
	metrics.RecordCacheSize(cacheNamespaceDaily, h.dailyCache.Len())
	return removed
}

// cacheStats returns per-endpoint cache statistics, or nil when caching is
// disabled.
func (h *Handler) cacheStats() map[string]models.CacheStats {
	if h.analyzeCache == nil {
		return nil
	}
	return map[string]models.CacheStats{
		cacheNamespaceAnalyze: models.NewCacheStats(h.analyzeCache.Stats()),
		cacheNamespaceDaily:   models.NewCacheStats(h.dailyCache.Stats()),
	}
}
