// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

/*
Package api provides the HTTP interface of the Basketlytics server.

Routing uses Chi with production middleware from the Chi ecosystem:
go-chi/cors for CORS and go-chi/httprate for per-IP rate limiting. Request and
response bodies are encoded with goccy/go-json and every response uses the
models.APIResponse envelope.

Endpoints:

	POST /api/v1/analyze          mine itemsets and rules
	POST /api/v1/analyze/daily    mine the day before targetDate
	GET  /api/v1/algorithms       registered miners
	GET  /api/v1/health           status, uptime and engine counters
	GET  /api/v1/health/live      liveness probe
	GET  /api/v1/health/ready     readiness probe, 503 until both miners are registered
	GET  /metrics                 Prometheus exposition

Error Mapping:

	malformed body            400 INVALID_JSON
	validator tag failure     400 VALIDATION_ERROR  (details.field is the JSON path)
	*basket.InputError        400 INVALID_INPUT     (details.field, details.reason)
	body above MaxBodyBytes   413 PAYLOAD_TOO_LARGE
	rate limit                429 RATE_LIMIT_EXCEEDED
	context.DeadlineExceeded  504 ANALYSIS_TIMEOUT
	context.Canceled          503 SERVICE_UNAVAILABLE
	anything else             500 ANALYSIS_ERROR

An analysis that finds no frequent itemsets is not an error: it returns 200
with data.empty set and an advisory message.

Response Cache:

With HandlerConfig.CacheEnabled, successful analyze and daily responses are
kept in an internal/cache LRU keyed by a hash of the decoded request. Repeated
identical bodies skip the engine; X-Cache reports HIT or MISS and the cached
body carries the current request id. SweepCaches removes expired entries and
the health endpoint reports per-endpoint cache statistics.

Usage:

	handler := api.NewHandler(engine, api.HandlerConfig{Version: version, MaxBodyBytes: cfg.Server.MaxBodyBytes})
	chiMw := api.NewChiMiddlewareFromSecurity(cfg.Security.CORSOrigins,
	    cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled)
	srv := &http.Server{Addr: cfg.Addr(), Handler: api.NewRouter(handler, chiMw).SetupChi()}
*/
package api
