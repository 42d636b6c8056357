// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis outcomes recorded by RecordAnalysis.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Mining Metrics
	MiningDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "basket_mining_duration_seconds",
			Help:    "Duration of frequent itemset mining in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"algorithm"},
	)

	MiningItemsets = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "basket_mining_itemsets",
			Help:    "Number of frequent itemsets produced per mining run",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
		},
		[]string{"algorithm"},
	)

	RulesGenerated = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "basket_rules_generated",
			Help:    "Number of association rules produced per run",
			Buckets: []float64{0, 1, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
		},
		[]string{"algorithm"},
	)

	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basket_analyses_total",
			Help: "Total number of analyses by kind and outcome",
		},
		[]string{"kind", "outcome"}, // kind: "analyze", "daily"
	)

	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "basket_analysis_duration_seconds",
			Help:    "End-to-end analysis duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"kind"},
	)

	AnalysisTransactions = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "basket_analysis_transactions",
			Help:    "Number of transactions per analysis",
			Buckets: []float64{1, 10, 100, 1000, 10000, 50000, 100000, 500000},
		},
	)

	AnalysesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "basket_analyses_in_flight",
			Help: "Current number of analyses holding an execution slot",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "analyze", "daily"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordMining records one miner run
func RecordMining(algorithm string, duration time.Duration, itemsets int) {
	MiningDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	MiningItemsets.WithLabelValues(algorithm).Observe(float64(itemsets))
}

// RecordRules records the number of rules derived from one miner's itemsets
func RecordRules(algorithm string, rules int) {
	RulesGenerated.WithLabelValues(algorithm).Observe(float64(rules))
}

// RecordAnalysis records the outcome of a complete analysis
func RecordAnalysis(kind, outcome string, duration time.Duration, transactions int) {
	AnalysesTotal.WithLabelValues(kind, outcome).Inc()
	AnalysisDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if transactions > 0 {
		AnalysisTransactions.Observe(float64(transactions))
	}
}

// TrackAnalysis tracks analyses holding an execution slot
func TrackAnalysis(inc bool) {
	if inc {
		AnalysesInFlight.Inc()
	} else {
		AnalysesInFlight.Dec()
	}
}

// RecordCacheLookup records a cache hit or miss and the resulting cache size
func RecordCacheLookup(cacheType string, hit bool, size int) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
	CacheSize.WithLabelValues(cacheType).Set(float64(size))
}

// RecordCacheSize publishes the entry count of a cache after a sweep.
func RecordCacheSize(cacheType string, size int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(size))
}

// SetAppInfo publishes build information
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// UpdateUptime publishes seconds since start
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
