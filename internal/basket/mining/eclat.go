// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package mining

import (
	"context"

	"github.com/tomtom215/basketlytics/internal/basket"
)

// Eclat mines frequent itemsets from a vertical database.
//
// Every item maps to its tid-list, the ascending ids of the transactions that
// contain it. The support count of an itemset is the length of the
// intersection of its members' tid-lists:
//
//	tids({A,B}) = tids(A) ∩ tids(B)
//
// Frequent pairs keep their intersection so that triples only intersect one
// more list.
type Eclat struct {
	BaseMiner
}

// NewEclat creates a new Eclat miner.
func NewEclat() *Eclat {
	return &Eclat{
		BaseMiner: NewBaseMiner(basket.AlgorithmEclat,
			"Vertical mining by intersecting per-item transaction id lists"),
	}
}

// frequentPair is a frequent 2-itemset with its tid-list.
type frequentPair struct {
	items [2]int
	tids  []int
}

// Mine returns every itemset of up to basket.MaxItemsetSize members whose
// support meets minSupport.
func (e *Eclat) Mine(ctx context.Context, store *basket.TransactionStore, minSupport float64, trace *basket.Trace) ([]basket.Itemset, error) {
	minCount, err := minCountFor(store, minSupport)
	if err != nil {
		return nil, err
	}

	trace.Addf("Starting Eclat algorithm with minimum support count: %d (%.2f%%)", minCount, minSupport*100)
	trace.Addf("Total transactions: %d, Total unique products: %d", store.Len(), store.ItemCount())

	out := newCollector(store)

	// Vertical database: item -> ascending transaction ids
	tidLists := make([][]int, store.ItemCount())
	for tid := 0; tid < store.Len(); tid++ {
		for _, idx := range store.Transaction(tid) {
			tidLists[idx] = append(tidLists[idx], tid)
		}
	}
	trace.Addf("Created vertical database with %d items", len(tidLists))

	// Frequent 1-itemsets
	frequent := make([]int, 0, len(tidLists))
	for idx, tids := range tidLists {
		if len(tids) < minCount {
			continue
		}
		frequent = append(frequent, idx)
		single := []int{idx}
		out.mark(keyOf(single))
		out.add(single, len(tids))
	}
	trace.Addf("Found %d frequent 1-itemsets", len(frequent))

	// Frequent 2-itemsets
	trace.Addf("Generating 2-itemsets from %d frequent items", len(frequent))
	pairs := make([]frequentPair, 0)
	for i := 0; i < len(frequent); i++ {
		if ContextCancelled(ctx) {
			return nil, ctx.Err()
		}
		for j := i + 1; j < len(frequent); j++ {
			a, b := frequent[i], frequent[j]
			encoded := []int{a, b}
			if !out.mark(keyOf(encoded)) {
				continue
			}

			tids := intersectTids(tidLists[a], tidLists[b])
			if len(tids) < minCount {
				continue
			}
			out.add(encoded, len(tids))
			pairs = append(pairs, frequentPair{items: [2]int{a, b}, tids: tids})
		}
	}
	trace.Addf("Found %d frequent 2-itemsets", len(pairs))

	// Frequent 3-itemsets: extend each frequent pair by one frequent item.
	// Different pairs reach the same triple; the seen set keeps one.
	trace.Addf("Generating 3-itemsets")
	triples := 0
	for _, pair := range pairs {
		if ContextCancelled(ctx) {
			return nil, ctx.Err()
		}
		for _, x := range frequent {
			if x == pair.items[0] || x == pair.items[1] {
				continue
			}
			encoded := sortedCopy([]int{pair.items[0], pair.items[1], x})
			if !out.mark(keyOf(encoded)) {
				continue
			}

			count := intersectCount(pair.tids, tidLists[x])
			if count < minCount {
				continue
			}
			out.add(encoded, count)
			triples++
		}
	}
	trace.Addf("Found %d frequent 3-itemsets", triples)

	result := out.result()
	trace.Addf("Eclat algorithm completed. Total frequent itemsets found: %d", len(result))
	return result, nil
}

// intersectTids returns the common ids of two ascending tid-lists.
func intersectTids(a, b []int) []int {
	capacity := len(a)
	if len(b) < capacity {
		capacity = len(b)
	}
	out := make([]int, 0, capacity)

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// intersectCount returns the size of the intersection of two ascending tid-lists.
func intersectCount(a, b []int) int {
	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}
