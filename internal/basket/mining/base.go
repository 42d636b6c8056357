// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package mining

import (
	"context"
	"sort"

	"github.com/tomtom215/basketlytics/internal/basket"
)

// BaseMiner provides the identity shared by all miners.
type BaseMiner struct {
	algorithm   basket.Algorithm
	description string
}

// NewBaseMiner creates a base miner for the given algorithm.
func NewBaseMiner(algorithm basket.Algorithm, description string) BaseMiner {
	return BaseMiner{
		algorithm:   algorithm,
		description: description,
	}
}

// Name returns the algorithm wire name.
func (b *BaseMiner) Name() string {
	return b.algorithm.String()
}

// Algorithm returns the mining strategy.
func (b *BaseMiner) Algorithm() basket.Algorithm {
	return b.algorithm
}

// Description returns a short human-readable summary.
func (b *BaseMiner) Description() string {
	return b.description
}

// Ensure all miners implement the interface.
var (
	_ basket.Miner = (*Eclat)(nil)
	_ basket.Miner = (*FPGrowth)(nil)
)

// All returns one instance of every miner, in basket.Algorithms order.
func All() []basket.Miner {
	return []basket.Miner{NewEclat(), NewFPGrowth()}
}

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// minCountFor validates the mining input and returns the absolute support threshold.
func minCountFor(store *basket.TransactionStore, minSupport float64) (int, error) {
	if store == nil || store.Len() == 0 {
		return 0, &basket.InputError{Field: "transactions", Reason: "at least one transaction is required"}
	}
	if err := basket.ValidateThreshold("minSupport", minSupport); err != nil {
		return 0, err
	}
	return basket.MinSupportCount(minSupport, store.Len()), nil
}

// itemsetKey identifies an encoded itemset. Unused slots hold -1.
type itemsetKey [basket.MaxItemsetSize]int

// keyOf builds the key for ascending encoded items.
func keyOf(encoded []int) itemsetKey {
	key := itemsetKey{-1, -1, -1}
	copy(key[:], encoded)
	return key
}

// collector accumulates emitted itemsets and rejects duplicates.
type collector struct {
	store    *basket.TransactionStore
	seen     map[itemsetKey]struct{}
	itemsets []basket.Itemset
}

func newCollector(store *basket.TransactionStore) *collector {
	return &collector{
		store:    store,
		seen:     make(map[itemsetKey]struct{}),
		itemsets: make([]basket.Itemset, 0, store.ItemCount()),
	}
}

// mark records key as visited and reports whether it was new.
func (c *collector) mark(key itemsetKey) bool {
	if _, ok := c.seen[key]; ok {
		return false
	}
	c.seen[key] = struct{}{}
	return true
}

// add emits an itemset whose key has already been marked.
func (c *collector) add(encoded []int, count int) {
	c.itemsets = append(c.itemsets, c.store.Itemset(encoded, count))
}

// result returns the collected itemsets in canonical order.
func (c *collector) result() []basket.Itemset {
	basket.SortItemsets(c.itemsets)
	return c.itemsets
}

// sortedCopy returns encoded items in ascending order.
func sortedCopy(encoded []int) []int {
	out := make([]int, len(encoded))
	copy(out, encoded)
	sort.Ints(out)
	return out
}
