// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/basketlytics/internal/models"
)

// Health handles health check requests
//
// Reports "healthy" when every algorithm has a registered miner and
// "degraded" otherwise, with engine counters and response cache statistics.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !h.engine.Ready() {
		status = "degraded"
	}

	miners := h.engine.Miners()
	names := make([]string, len(miners))
	for i, m := range miners {
		names[i] = m.Name()
	}
	stats := h.engine.Stats()

	respondSuccess(w, r, http.StatusOK, models.HealthResponse{
		Status:     status,
		Version:    h.config.Version,
		Uptime:     time.Since(h.startTime).Seconds(),
		Algorithms: names,
		Stats:      &stats,
		Cache:      h.cacheStats(),
	}, 0)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, models.HealthResponse{
		Status:  "alive",
		Version: h.config.Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if every algorithm can be served, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.engine.Ready() {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"not every algorithm has a registered miner", nil, nil)
		return
	}

	respondSuccess(w, r, http.StatusOK, models.HealthResponse{
		Status:  "ready",
		Version: h.config.Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}, 0)
}
