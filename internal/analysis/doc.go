// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

// Package analysis orchestrates market basket analyses.
//
// The Engine validates a request once at the boundary, builds a
// basket.TransactionStore, runs the selected miner and derives association
// rules from its itemsets. In comparison mode every registered miner runs on
// the same store and the result carries per-miner statistics.
//
// # Usage
//
//	engine, err := analysis.NewEngine(analysis.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	for _, m := range mining.All() {
//	    engine.RegisterMiner(m)
//	}
//
//	result, err := engine.Analyze(ctx, analysis.Request{
//	    Transactions: transactions,
//	    Items:        items,
//	    MinSupport:   0.05,
//	})
//
// # Errors
//
// Input problems are returned as *basket.InputError and never reach a miner.
// Deadline and cancellation errors wrap the context error. A result without
// frequent itemsets is not an error: Result.Empty is set and Result.Message
// advises lowering the minimum support.
//
// # Daily Patterns
//
// AnalyzeDaily mines only the transactions dated on the calendar day before
// the target date, using the same miners as Analyze.
//
// # Concurrency
//
// At most Config.MaxConcurrent analyses run at once; further callers wait for
// a slot or for their context to end.
package analysis
