// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package api

import (
	"time"

	"github.com/tomtom215/basketlytics/internal/analysis"
	"github.com/tomtom215/basketlytics/internal/cache"
	"github.com/tomtom215/basketlytics/internal/models"
)

// HandlerConfig holds the HTTP-level settings of the handlers.
type HandlerConfig struct {
	// Version is reported by the health endpoint.
	Version string

	// MaxBodyBytes caps request bodies. Zero disables the cap.
	MaxBodyBytes int64

	// CacheEnabled serves repeated identical requests from memory.
	CacheEnabled bool

	// CacheSize is the entry limit of each response cache.
	CacheSize int

	// CacheTTL is how long a cached response is served.
	CacheTTL time.Duration
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response envelope, decoding and error mapping
//   - handlers_analysis.go: analyze, daily and algorithm discovery
//   - handlers_cache.go: response caching for the analysis endpoints
//   - handlers_health.go: health, liveness and readiness probes
type Handler struct {
	engine    *analysis.Engine
	config    HandlerConfig
	startTime time.Time

	// nil when caching is disabled
	analyzeCache *cache.LRU[models.AnalyzeResponse]
	dailyCache   *cache.LRU[models.DailyResponse]
}

// NewHandler creates a new API handler backed by engine.
//
// Example:
//
//	handler := api.NewHandler(engine, api.HandlerConfig{Version: version, MaxBodyBytes: 32 << 20})
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(engine *analysis.Engine, config HandlerConfig) *Handler {
	h := &Handler{
		engine:    engine,
		config:    config,
		startTime: time.Now(),
	}
	if config.CacheEnabled {
		h.analyzeCache = cache.NewLRU[models.AnalyzeResponse](config.CacheSize, config.CacheTTL)
		h.dailyCache = cache.NewLRU[models.DailyResponse](config.CacheSize, config.CacheTTL)
	}
	return h
}
