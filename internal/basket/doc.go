// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

// Package basket defines the shared data model for market basket analysis.
//
// # Data Model
//
//   - Item: an opaque string identifier. Display names are resolved by callers.
//   - Transaction: a set of item ids with optional invoice number and date.
//   - Itemset: a canonical (sorted) set of items with its support.
//   - Rule: antecedent => consequent with support, confidence and lift.
//
// A TransactionStore normalizes caller input once per analysis: duplicate items
// inside a basket collapse, items outside the universe are dropped, and every
// item is encoded as its index in the sorted universe. Because the universe is
// sorted, index order equals canonical (lexicographic) order, so miners can
// work on integers and still emit canonical itemsets.
//
// # Mining Contract
//
// Every frequent itemset miner implements Miner:
//
//	itemsets, err := miner.Mine(ctx, store, minSupport, trace)
//
// All miners must return the same itemsets with the same supports for the same
// input. They differ only in how they compute them.
//
// # Errors
//
// Input problems are reported as *InputError, which wraps ErrInvalidInput.
// An analysis that finds no frequent itemsets is not an error.
package basket
