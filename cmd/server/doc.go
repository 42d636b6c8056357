// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

/*
Package main is the entry point for the Basketlytics server.

Basketlytics mines frequent itemsets from retail transactions with Eclat or
FP-Growth and derives association rules (support, confidence, lift) over the
result. The server exposes the analysis engine as a JSON REST API.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("basketlytics")
	├── MetricsSupervisor ("metrics-layer")
	│   ├── Uptime reporter
	│   └── Cache sweeper (when CACHE_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Analysis engine: Eclat and FP-Growth miners registered
 4. HTTP handlers: Chi router with CORS, rate limiting and Prometheus
 5. Supervisor Tree: Suture v4 process supervision

# Endpoints

	POST /api/v1/analyze          Mine itemsets and rules
	POST /api/v1/analyze/daily    Analyze the day before a target date
	GET  /api/v1/algorithms       List registered miners
	GET  /api/v1/health           Health with engine statistics
	GET  /api/v1/health/live      Liveness probe
	GET  /api/v1/health/ready     Readiness probe
	GET  /metrics                 Prometheus metrics

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
  - Environment variables (HTTP_PORT, LOG_LEVEL, ANALYSIS_MIN_SUPPORT, ...)
  - Config file (config.yaml, or CONFIG_PATH)
  - Built-in defaults

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight analyses within HTTP_SHUTDOWN_TIMEOUT.

# Example Usage

	export HTTP_PORT=8080
	export ANALYSIS_ALGORITHM=fpgrowth
	./basketlytics

	curl -s localhost:8080/api/v1/analyze -d '{
	  "transactions": [{"items": ["A", "B"]}, {"items": ["A", "C"]}],
	  "productMap": {"A": "Apple", "B": "Bread", "C": "Cheese"},
	  "minSupport": 0.5
	}'
*/
package main
