// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// histogramCount returns the sample count of one histogram series.
func histogramCount(t *testing.T, observer prometheus.Observer) uint64 {
	t.Helper()

	metric, ok := observer.(prometheus.Metric)
	if !ok {
		t.Fatal("observer is not a prometheus.Metric")
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{
			name:       "successful analysis",
			method:     "POST",
			endpoint:   "/api/v1/analyze",
			statusCode: "200",
			duration:   50 * time.Millisecond,
		},
		{
			name:       "invalid daily request",
			method:     "POST",
			endpoint:   "/api/v1/analyze/daily",
			statusCode: "400",
			duration:   time.Millisecond,
		},
		{
			name:       "health check",
			method:     "GET",
			endpoint:   "/api/v1/health",
			statusCode: "200",
			duration:   100 * time.Microsecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode)
			before := testutil.ToFloat64(counter)

			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("api_requests_total = %v, want %v", got, before+1)
			}
		})
	}
}

// TestTrackActiveRequest tests the active request gauge under concurrency
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestRecordMining(t *testing.T) {
	tests := []struct {
		algorithm string
		duration  time.Duration
		itemsets  int
	}{
		{"eclat", 2 * time.Millisecond, 42},
		{"fpgrowth", 3 * time.Millisecond, 42},
		{"eclat", 0, 0},
	}

	for _, tt := range tests {
		before := histogramCount(t, MiningDuration.WithLabelValues(tt.algorithm))
		RecordMining(tt.algorithm, tt.duration, tt.itemsets)
		RecordRules(tt.algorithm, tt.itemsets/2)

		if got := histogramCount(t, MiningDuration.WithLabelValues(tt.algorithm)); got != before+1 {
			t.Errorf("%s: mining duration samples = %d, want %d", tt.algorithm, got, before+1)
		}
	}
}

func TestRecordAnalysis(t *testing.T) {
	outcomes := []string{OutcomeSuccess, OutcomeEmpty, OutcomeInvalid, OutcomeTimeout, OutcomeError}

	for _, outcome := range outcomes {
		counter := AnalysesTotal.WithLabelValues("analyze", outcome)
		before := testutil.ToFloat64(counter)

		RecordAnalysis("analyze", outcome, 10*time.Millisecond, 100)

		if got := testutil.ToFloat64(counter); got != before+1 {
			t.Errorf("basket_analyses_total{outcome=%q} = %v, want %v", outcome, got, before+1)
		}
	}
}

func TestTrackAnalysis(t *testing.T) {
	before := testutil.ToFloat64(AnalysesInFlight)

	TrackAnalysis(true)
	if got := testutil.ToFloat64(AnalysesInFlight); got != before+1 {
		t.Errorf("in flight = %v, want %v", got, before+1)
	}
	TrackAnalysis(false)
	if got := testutil.ToFloat64(AnalysesInFlight); got != before {
		t.Errorf("in flight = %v, want %v", got, before)
	}
}

func TestSystemMetrics(t *testing.T) {
	SetAppInfo("test", "go1.24")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("test", "go1.24")); got != 1 {
		t.Errorf("app_info = %v, want 1", got)
	}

	UpdateUptime(time.Now().Add(-time.Minute))
	if got := testutil.ToFloat64(AppUptime); got < 59 {
		t.Errorf("app_uptime_seconds = %v, want >= 59", got)
	}

	RecordRateLimitHit("/api/v1/analyze")
	if got := testutil.ToFloat64(APIRateLimitHits.WithLabelValues("/api/v1/analyze")); got < 1 {
		t.Errorf("api_rate_limit_hits_total = %v, want >= 1", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test"))

	RecordCacheLookup("test", false, 1)
	RecordCacheLookup("test", true, 1)
	RecordCacheLookup("test", true, 3)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test")); got != hits+2 {
		t.Errorf("cache_hits_total = %v, want %v", got, hits+2)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test")); got != misses+1 {
		t.Errorf("cache_misses_total = %v, want %v", got, misses+1)
	}
	if got := testutil.ToFloat64(CacheSize.WithLabelValues("test")); got != 3 {
		t.Errorf("cache_entries = %v, want 3", got)
	}
}
