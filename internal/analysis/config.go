// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package analysis

import (
	"fmt"
	"time"

	"github.com/tomtom215/basketlytics/internal/basket"
	"github.com/tomtom215/basketlytics/internal/basket/rules"
)

// Config contains all configuration for the analysis engine.
type Config struct {
	// DefaultMinSupport is used when a request leaves minSupport unset.
	DefaultMinSupport float64 `json:"default_min_support"`

	// DefaultMinConfidence is used when a request leaves minConfidence unset.
	DefaultMinConfidence float64 `json:"default_min_confidence"`

	// DefaultAlgorithm is used when a request leaves algorithm unset.
	DefaultAlgorithm basket.Algorithm `json:"default_algorithm"`

	// ParallelCompare runs both miners concurrently in comparison mode.
	// Results are identical either way; only wall-clock time differs.
	ParallelCompare bool `json:"parallel_compare"`

	// Timeout bounds a single analysis. Zero disables the engine deadline.
	Timeout time.Duration `json:"timeout"`

	// MaxTransactions rejects requests with more transactions.
	MaxTransactions int `json:"max_transactions"`

	// MaxItems rejects requests whose item universe is larger.
	MaxItems int `json:"max_items"`

	// MaxConcurrent bounds the number of analyses running at once.
	MaxConcurrent int `json:"max_concurrent"`

	// MaxRuleItems skips rule generation for larger itemsets.
	MaxRuleItems int `json:"max_rule_items"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultMinSupport:    0.01,
		DefaultMinConfidence: 0.2,
		DefaultAlgorithm:     basket.AlgorithmEclat,
		ParallelCompare:      true,
		Timeout:              30 * time.Second,
		MaxTransactions:      500000,
		MaxItems:             10000,
		MaxConcurrent:        4,
		MaxRuleItems:         rules.DefaultMaxItems,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := basket.ValidateThreshold("default_min_support", c.DefaultMinSupport); err != nil {
		return fmt.Errorf("analysis.default_min_support: %w", err)
	}
	if err := basket.ValidateThreshold("default_min_confidence", c.DefaultMinConfidence); err != nil {
		return fmt.Errorf("analysis.default_min_confidence: %w", err)
	}
	if _, err := c.DefaultAlgorithm.MarshalText(); err != nil {
		return fmt.Errorf("analysis.default_algorithm: %w", err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("analysis.timeout must be non-negative, got %v", c.Timeout)
	}
	if c.MaxTransactions < 1 {
		return fmt.Errorf("analysis.max_transactions must be positive, got %d", c.MaxTransactions)
	}
	if c.MaxItems < 1 {
		return fmt.Errorf("analysis.max_items must be positive, got %d", c.MaxItems)
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("analysis.max_concurrent must be positive, got %d", c.MaxConcurrent)
	}
	if c.MaxRuleItems < 2 || c.MaxRuleItems > rules.DefaultMaxItems {
		return fmt.Errorf("analysis.max_rule_items must be between 2 and %d, got %d", rules.DefaultMaxItems, c.MaxRuleItems)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
