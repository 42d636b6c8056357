// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package mining

import (
	"context"

	"github.com/tomtom215/basketlytics/internal/basket"
)

// FPGrowth mines frequent itemsets with a frequent-pattern tree.
//
// Transactions are reduced to their frequent items, ordered by descending
// frequency and inserted into a prefix tree. Itemsets are grown from the
// least frequent item upward: for each item the tree yields a conditional
// pattern base (the prefixes that lead to it), which is itself built into a
// smaller tree and mined recursively, up to basket.MaxItemsetSize members.
type FPGrowth struct {
	BaseMiner
}

// NewFPGrowth creates a new FP-Growth miner.
func NewFPGrowth() *FPGrowth {
	return &FPGrowth{
		BaseMiner: NewBaseMiner(basket.AlgorithmFPGrowth,
			"Horizontal mining over a frequency-ordered prefix tree"),
	}
}

// Mine returns every itemset of up to basket.MaxItemsetSize members whose
// support meets minSupport.
func (f *FPGrowth) Mine(ctx context.Context, store *basket.TransactionStore, minSupport float64, trace *basket.Trace) ([]basket.Itemset, error) {
	minCount, err := minCountFor(store, minSupport)
	if err != nil {
		return nil, err
	}

	trace.Addf("Starting FP-Growth algorithm with minimum support count: %d (%.2f%%)", minCount, minSupport*100)
	trace.Addf("Total transactions: %d, Total unique products: %d", store.Len(), store.ItemCount())

	paths := make([]weightedPath, 0, store.Len())
	occurring := make(map[int]struct{}, store.ItemCount())
	for tid := 0; tid < store.Len(); tid++ {
		items := store.Transaction(tid)
		if len(items) == 0 {
			continue
		}
		for _, idx := range items {
			occurring[idx] = struct{}{}
		}
		paths = append(paths, weightedPath{items: items, count: 1})
	}
	trace.Addf("Counted frequencies for %d items", len(occurring))

	tree := buildTree(paths, minCount)
	trace.Addf("Found %d frequent items after filtering", len(tree.order))
	trace.Addf("Built FP-tree with %d nodes from %d transactions", tree.nodes, len(paths))

	out := newCollector(store)
	if err := f.grow(ctx, tree, nil, minCount, out, true); err != nil {
		return nil, err
	}

	result := out.result()
	bySize := basket.CountBySize(result)
	trace.Addf("Found %d frequent 1-itemsets", bySize[1])
	trace.Addf("Found %d frequent 2-itemsets", bySize[2])
	trace.Addf("Found %d frequent 3-itemsets", bySize[3])
	trace.Addf("FP-Growth algorithm completed. Total frequent itemsets found: %d", len(result))
	return result, nil
}

// grow emits suffix+item for every item of tree and recurses into the
// conditional tree of each while the size cap allows.
func (f *FPGrowth) grow(ctx context.Context, tree *fpTree, suffix []int, minCount int, out *collector, top bool) error {
	for i := len(tree.order) - 1; i >= 0; i-- {
		if top && ContextCancelled(ctx) {
			return ctx.Err()
		}

		item := tree.order[i]
		itemset := make([]int, len(suffix)+1)
		copy(itemset, suffix)
		itemset[len(suffix)] = item

		encoded := sortedCopy(itemset)
		if out.mark(keyOf(encoded)) {
			out.add(encoded, tree.counts[item])
		}

		if len(itemset) >= basket.MaxItemsetSize {
			continue
		}

		conditional := buildTree(tree.conditionalBase(item), minCount)
		if len(conditional.order) == 0 {
			continue
		}
		if err := f.grow(ctx, conditional, itemset, minCount, out, false); err != nil {
			return err
		}
	}
	return nil
}
