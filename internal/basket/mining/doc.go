// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

// Package mining implements frequent itemset miners for the analysis engine.
//
// Each miner implements the basket.Miner interface and can be registered with
// the analysis engine. Miners are stateless: every call to Mine owns its own
// working tables, so a single miner may serve concurrent analyses.
//
// # Strategies
//
//   - Eclat: vertical mining. Each item maps to the sorted list of transaction
//     ids containing it; larger itemsets are counted by intersecting lists.
//   - FPGrowth: horizontal mining. Transactions are compressed into a
//     frequency-ordered prefix tree and itemsets are grown from conditional
//     pattern bases.
//
// # Contract
//
// Both strategies return exactly the same itemsets with the same supports for
// the same input. Itemsets are capped at basket.MaxItemsetSize members and are
// returned sorted by size, then by canonical member order.
//
//	miner := mining.NewEclat()
//	itemsets, err := miner.Mine(ctx, store, 0.05, trace)
//
// A store without transactions is rejected with basket.ErrInvalidInput. A store
// with an empty item universe yields an empty result.
package mining
