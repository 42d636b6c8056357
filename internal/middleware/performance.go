// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/basketlytics/internal/logging"
)

// DefaultSlowThreshold is the latency above which a request is logged as slow.
const DefaultSlowThreshold = time.Second

// SlowRequests logs a warning for every request slower than threshold. The
// line carries the request and correlation IDs from the logging context,
// so a slow analysis can be matched to its engine logs. A non-positive
// threshold selects DefaultSlowThreshold.
func SlowRequests(threshold time.Duration) func(http.Handler) http.Handler {
	if threshold <= 0 {
		threshold = DefaultSlowThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			if duration <= threshold {
				return
			}

			logger := logging.CtxWith(r.Context()).Str("component", "http").Logger()
			logger.Warn().
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Int("status", wrapper.statusCode).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("threshold_ms", threshold.Milliseconds()).
				Msg("Slow request detected")
		})
	}
}
