// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

/*
Package config provides centralized configuration management for Basketlytics.

Configuration is loaded with Koanf v2 from three layers, later layers
overriding earlier ones:

 1. Built-in defaults (structs provider over defaultConfig)
 2. An optional YAML file: CONFIG_PATH, or config.yaml / config.yml in the
    working directory, or /etc/basketlytics/config.yaml
 3. Environment variables, through an explicit mapping table

Unmapped environment variables are ignored.

# Sections

  - server: listen address, HTTP timeouts, request body cap
  - logging: level, format, caller
  - analysis: default thresholds and algorithm, compare mode, limits
  - security: CORS origins and rate limiting
  - cache: analysis response cache
  - supervisor: suture failure threshold, decay, and backoff

# Environment Variables

Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8080)
  - HTTP_READ_TIMEOUT (30s), HTTP_WRITE_TIMEOUT (60s), HTTP_SHUTDOWN_TIMEOUT (10s)
  - HTTP_MAX_BODY_BYTES (32MiB)
  - ENVIRONMENT (development)

Analysis:
  - ANALYSIS_MIN_SUPPORT (0.01), ANALYSIS_MIN_CONFIDENCE (0.2)
  - ANALYSIS_ALGORITHM (eclat)
  - ANALYSIS_PARALLEL_COMPARE (true)
  - ANALYSIS_TIMEOUT (30s)
  - ANALYSIS_MAX_TRANSACTIONS (500000), ANALYSIS_MAX_ITEMS (10000)
  - ANALYSIS_MAX_CONCURRENT (4), ANALYSIS_MAX_RULE_ITEMS (16)

Security:
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_REQUESTS (60), RATE_LIMIT_WINDOW (1m), DISABLE_RATE_LIMIT (false)

Cache:
  - CACHE_ENABLED (true), CACHE_SIZE (256), CACHE_TTL (10m)

Logging:
  - LOG_LEVEL (info), LOG_FORMAT (json), LOG_CALLER (false)

Supervisor:
  - SUPERVISOR_FAILURE_THRESHOLD (5), SUPERVISOR_FAILURE_DECAY (30),
    SUPERVISOR_FAILURE_BACKOFF (15s)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.ToLoggingConfig())
	engine, err := analysis.NewEngine(cfg.ToAnalysisConfig(), logging.Logger())

# Example config.yaml

	server:
	  port: 9090
	analysis:
	  default_algorithm: fpgrowth
	  default_min_support: 0.02
	security:
	  cors_origins: ["https://shop.example.com"]
*/
package config
