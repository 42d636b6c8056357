// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/basketlytics/internal/middleware"
	"github.com/tomtom215/basketlytics/internal/models"
)

// Analyze handles POST /api/v1/analyze.
//
// The body is a models.AnalyzeRequest. The response data is a
// models.AnalyzeResponse; an analysis that finds no frequent itemsets is a
// success with empty set to true. Identical bodies are served from the
// response cache when it is enabled.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())

	var req models.AnalyzeRequest
	if !decodeJSON(w, r, h.config.MaxBodyBytes, &req) {
		return
	}

	key, cached, hit := lookupCached(w, h.analyzeCache, cacheNamespaceAnalyze, &req)
	if hit {
		cached.RequestID = requestID
		respondSuccess(w, r, http.StatusOK, cached, time.Since(start).Milliseconds())
		return
	}

	result, err := h.engine.Analyze(r.Context(), req.ToAnalysisRequest(requestID))
	if err != nil {
		respondAnalysisError(w, r, err)
		return
	}

	resp := models.NewAnalyzeResponse(result, req.Names())
	storeCached(h.analyzeCache, key, resp)
	respondSuccess(w, r, http.StatusOK, resp, result.LatencyMS)
}

// AnalyzeDaily handles POST /api/v1/analyze/daily.
//
// The transactions dated the day before targetDate are mined with the
// selected algorithm.
func (h *Handler) AnalyzeDaily(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())

	var req models.DailyAnalyzeRequest
	if !decodeJSON(w, r, h.config.MaxBodyBytes, &req) {
		return
	}

	key, cached, hit := lookupCached(w, h.dailyCache, cacheNamespaceDaily, &req)
	if hit {
		cached.Result.RequestID = requestID
		respondSuccess(w, r, http.StatusOK, cached, time.Since(start).Milliseconds())
		return
	}

	result, err := h.engine.AnalyzeDaily(r.Context(), req.ToDailyRequest(requestID))
	if err != nil {
		respondAnalysisError(w, r, err)
		return
	}

	resp := models.NewDailyResponse(result, req.Names())
	storeCached(h.dailyCache, key, resp)
	respondSuccess(w, r, http.StatusOK, resp, result.Result.LatencyMS)
}

// Algorithms handles GET /api/v1/algorithms.
func (h *Handler) Algorithms(w http.ResponseWriter, r *http.Request) {
	defaultAlg := h.engine.Config().DefaultAlgorithm

	miners := h.engine.Miners()
	infos := make([]models.AlgorithmInfo, 0, len(miners))
	for _, m := range miners {
		infos = append(infos, models.AlgorithmInfo{
			Name:        m.Name(),
			DisplayName: m.Algorithm().DisplayName(),
			Description: m.Description(),
			Default:     m.Algorithm() == defaultAlg,
		})
	}

	respondSuccess(w, r, http.StatusOK, infos, 0)
}
