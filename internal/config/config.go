// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package config

import (
	"time"

	"github.com/tomtom215/basketlytics/internal/analysis"
	"github.com/tomtom215/basketlytics/internal/basket"
	"github.com/tomtom215/basketlytics/internal/logging"
	"github.com/tomtom215/basketlytics/internal/supervisor"
)

// Config holds all application configuration.
//
// Precedence, highest first: environment variables, YAML config file,
// built-in defaults. See LoadWithKoanf.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Analysis   AnalysisConfig   `koanf:"analysis"`
	Security   SecurityConfig   `koanf:"security"`
	Cache      CacheConfig      `koanf:"cache"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST, HTTP_PORT
//   - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
//   - HTTP_MAX_BODY_BYTES: request body cap for analysis endpoints (default: 32MiB)
//   - ENVIRONMENT: development or production
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
	Environment     string        `koanf:"environment"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// AnalysisConfig holds analysis engine settings.
//
// Environment Variables:
//   - ANALYSIS_MIN_SUPPORT: default minimum support when a request omits it (default: 0.01)
//   - ANALYSIS_MIN_CONFIDENCE: default minimum confidence (default: 0.2)
//   - ANALYSIS_ALGORITHM: default miner, eclat or fpgrowth (default: eclat)
//   - ANALYSIS_PARALLEL_COMPARE: run both miners concurrently in compare mode (default: true)
//   - ANALYSIS_TIMEOUT: per-request timeout (default: 30s)
//   - ANALYSIS_MAX_TRANSACTIONS, ANALYSIS_MAX_ITEMS: request size limits
//   - ANALYSIS_MAX_CONCURRENT: analyses allowed to run at once (default: 4)
//   - ANALYSIS_MAX_RULE_ITEMS: largest itemset split into rules (default: 16)
type AnalysisConfig struct {
	DefaultMinSupport    float64       `koanf:"default_min_support"`
	DefaultMinConfidence float64       `koanf:"default_min_confidence"`
	DefaultAlgorithm     string        `koanf:"default_algorithm"`
	ParallelCompare      bool          `koanf:"parallel_compare"`
	RequestTimeout       time.Duration `koanf:"request_timeout"`
	MaxTransactions      int           `koanf:"max_transactions"`
	MaxItems             int           `koanf:"max_items"`
	MaxConcurrent        int           `koanf:"max_concurrent"`
	MaxRuleItems         int           `koanf:"max_rule_items"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// CacheConfig holds the analysis response cache settings.
//
// Environment Variables:
//   - CACHE_ENABLED: serve identical analysis requests from memory (default: true)
//   - CACHE_SIZE: entries per endpoint (default: 256)
//   - CACHE_TTL: lifetime of a cached response (default: 10m)
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	Size    int           `koanf:"size"`
	TTL     time.Duration `koanf:"ttl"`
}

// SupervisorConfig holds suture failure handling settings.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
}

// Load reads configuration from defaults, an optional config file, and the environment.
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// ToAnalysisConfig converts the analysis section into engine configuration.
// An unknown algorithm name keeps the engine default; Validate rejects it.
func (c *Config) ToAnalysisConfig() *analysis.Config {
	cfg := analysis.DefaultConfig()
	cfg.DefaultMinSupport = c.Analysis.DefaultMinSupport
	cfg.DefaultMinConfidence = c.Analysis.DefaultMinConfidence
	if alg, err := basket.ParseAlgorithm(c.Analysis.DefaultAlgorithm); err == nil {
		cfg.DefaultAlgorithm = alg
	}
	cfg.ParallelCompare = c.Analysis.ParallelCompare
	cfg.Timeout = c.Analysis.RequestTimeout
	cfg.MaxTransactions = c.Analysis.MaxTransactions
	cfg.MaxItems = c.Analysis.MaxItems
	cfg.MaxConcurrent = c.Analysis.MaxConcurrent
	cfg.MaxRuleItems = c.Analysis.MaxRuleItems
	return cfg
}

// ToLoggingConfig converts the logging section for logging.Init.
func (c *Config) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	return cfg
}

// ToTreeConfig converts the supervisor section into tree configuration.
func (c *Config) ToTreeConfig() supervisor.TreeConfig {
	return supervisor.TreeConfig{
		FailureThreshold: c.Supervisor.FailureThreshold,
		FailureDecay:     c.Supervisor.FailureDecay,
		FailureBackoff:   c.Supervisor.FailureBackoff,
		ShutdownTimeout:  c.Server.ShutdownTimeout,
	}
}
