// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/basketlytics/internal/analysis"
	"github.com/tomtom215/basketlytics/internal/basket/mining"
	"github.com/tomtom215/basketlytics/internal/models"
)

const sampleBody = `{
	"transactions": [
		{"invoiceNo": "1", "date": "2024-03-01", "items": ["A", "B"]},
		{"invoiceNo": "2", "date": "2024-03-01", "items": ["A", "B", "C"]},
		{"invoiceNo": "3", "date": "2024-03-01", "items": ["A", "C"]},
		{"invoiceNo": "4", "date": "2024-03-01", "items": ["B", "C"]},
		{"invoiceNo": "5", "date": "2024-03-02", "items": ["A", "B"]}
	],
	"items": [{"id": "A", "name": "Apple"}, "B", "C"],
	"productMap": {"B": "Bread"},
	"minSupport": 0.4,
	"minConfidence": 0.5
}`

// testEngine returns an engine with every miner registered unless bare is set.
func testEngine(t *testing.T, bare bool) *analysis.Engine {
	t.Helper()

	engine, err := analysis.NewEngine(analysis.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if !bare {
		for _, m := range mining.All() {
			engine.RegisterMiner(m)
		}
	}
	return engine
}

// testServer builds the full router around a fresh engine.
func testServer(t *testing.T, chiMw *ChiMiddleware) http.Handler {
	t.Helper()

	handler := NewHandler(testEngine(t, false), HandlerConfig{Version: "test", MaxBodyBytes: 1 << 20})
	return NewRouter(handler, chiMw).SetupChi()
}

// rateLimitOff disables the limiter so parallel tests share no budget.
func rateLimitOff() *ChiMiddleware {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"*"}
	cfg.RateLimitDisabled = true
	return NewChiMiddleware(cfg)
}

// do sends a request and returns the recorder.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope decodes the response envelope, with data left raw for a second pass.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()

	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %q: %v", string(env.Data), err)
	}
}
