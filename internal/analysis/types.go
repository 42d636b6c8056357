// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package analysis

import (
	"time"

	"github.com/tomtom215/basketlytics/internal/basket"
)

// EmptyResultMessage advises the caller when no itemset met the threshold.
const EmptyResultMessage = "No frequent itemsets found with the current parameters. Try lowering the minimum support."

// Request describes one analysis.
type Request struct {
	// RequestID correlates logs. Generated when empty.
	RequestID string

	// Transactions are the baskets to mine. Every transaction needs at least one item.
	Transactions []basket.Transaction

	// Items is the item universe. When empty, the keys of ProductMap are used.
	Items []string

	// ProductMap maps item ids to display names. Mining never reads the names.
	ProductMap map[string]string

	// Algorithm selects the miner by name. Empty selects the configured default.
	Algorithm string

	// MinSupport in (0, 1]. Zero selects the configured default.
	MinSupport float64

	// MinConfidence in (0, 1]. Zero selects the configured default.
	MinConfidence float64

	// CompareAlgorithms runs every registered miner on the same input.
	CompareAlgorithms bool
}

// DailyRequest analyzes the day before TargetDate.
type DailyRequest struct {
	Request

	// TargetDate in any format accepted by ParseDate.
	TargetDate string
}

// Params echoes the effective parameters of an analysis.
type Params struct {
	Algorithm        string  `json:"algorithm"`
	MinSupport       float64 `json:"minSupport"`
	MinConfidence    float64 `json:"minConfidence"`
	MinSupportCount  int     `json:"minSupportCount"`
	TransactionCount int     `json:"transactionCount"`
	ProductCount     int     `json:"productCount"`
}

// ProcessLogs holds the progress trace of each algorithm.
type ProcessLogs struct {
	Eclat    []string `json:"eclat"`
	FPGrowth []string `json:"fpgrowth"`
}

// set stores lines under the log of the given algorithm.
func (p *ProcessLogs) set(alg basket.Algorithm, lines []string) {
	switch alg {
	case basket.AlgorithmEclat:
		p.Eclat = lines
	case basket.AlgorithmFPGrowth:
		p.FPGrowth = lines
	}
}

// EngineStats summarizes one miner's run in comparison mode.
type EngineStats struct {
	Algorithm       string      `json:"algorithm"`
	ItemsetCount    int         `json:"itemsetCount"`
	RuleCount       int         `json:"ruleCount"`
	ExecutionTimeMS float64     `json:"executionTimeMs"`
	ItemsetsBySize  map[int]int `json:"itemsetsBySize"`
}

// Comparison reports both miners side by side.
type Comparison struct {
	Eclat    EngineStats `json:"eclat"`
	FPGrowth EngineStats `json:"fpgrowth"`

	// Equivalent is true when both miners produced the same itemsets with
	// supports within 1e-9.
	Equivalent bool `json:"equivalent"`
}

// Result is the outcome of one analysis.
type Result struct {
	RequestID string           `json:"requestId"`
	Algorithm basket.Algorithm `json:"algorithm"`
	Itemsets  []basket.Itemset `json:"itemsets"`
	Rules     []basket.Rule    `json:"rules"`

	// Empty is set when no itemset met minSupport. It is a success state.
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`

	Params      Params      `json:"params"`
	ProcessLogs ProcessLogs `json:"processLogs"`
	Comparison  *Comparison `json:"comparison,omitempty"`

	LatencyMS int64     `json:"latencyMs"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyResult is the outcome of a daily analysis.
type DailyResult struct {
	// TargetDate is the normalized requested date (YYYY-MM-DD).
	TargetDate string `json:"targetDate"`

	// PreviousDate is the analyzed day (YYYY-MM-DD).
	PreviousDate string `json:"previousDate"`

	// TransactionCount is the number of transactions on PreviousDate.
	TransactionCount int `json:"transactionCount"`

	Result *Result `json:"result"`
}

// Stats reports engine counters since startup.
type Stats struct {
	Requests  int64 `json:"requests"`
	Empty     int64 `json:"empty"`
	Invalid   int64 `json:"invalid"`
	Errors    int64 `json:"errors"`
	InFlight  int64 `json:"inFlight"`
	Completed int64 `json:"completed"`
}
