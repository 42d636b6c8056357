// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in progress (gauge)
  - api_rate_limit_hits_total: Requests rejected by the rate limiter (counter)
    Labels: endpoint

Mining Metrics:
  - basket_mining_duration_seconds: Miner run time (histogram)
    Labels: algorithm (eclat, fpgrowth)
  - basket_mining_itemsets: Frequent itemsets per run (histogram)
    Labels: algorithm
  - basket_rules_generated: Association rules per run (histogram)
    Labels: algorithm
  - basket_analyses_total: Completed analyses (counter)
    Labels: kind (analyze, daily), outcome (success, empty, invalid, timeout, error)
  - basket_analysis_duration_seconds: End-to-end analysis time (histogram)
    Labels: kind
  - basket_analysis_transactions: Transactions per analysis (histogram)
  - basket_analyses_in_flight: Analyses holding an execution slot (gauge)

System Metrics:
  - app_info: Version and Go version (gauge, always 1)
  - app_uptime_seconds: Seconds since start (gauge)

# Usage

	start := time.Now()
	itemsets, err := miner.Mine(ctx, store, minSupport, trace)
	metrics.RecordMining(miner.Name(), time.Since(start), len(itemsets))

HTTP metrics are recorded by middleware.PrometheusMetrics.
*/
package metrics
