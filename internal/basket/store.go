// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package basket

import (
	"math"
	"sort"
)

// supportEpsilon absorbs floating point noise in minSupport * N
// (0.07 * 100 evaluates to 7.000000000000001).
const supportEpsilon = 1e-9

// TransactionStore holds the normalized transactions of a single analysis.
//
// Items are encoded as their index in the sorted universe. Each encoded
// transaction is sorted ascending and free of duplicates. The store is
// immutable after construction and safe for concurrent reads.
type TransactionStore struct {
	items        []string
	index        map[string]int
	transactions [][]int
	dropped      int
}

// NewTransactionStore normalizes baskets against the given item universe.
// Items outside the universe are ignored; baskets that end up empty still
// count toward the transaction total.
func NewTransactionStore(baskets [][]string, universe []string) *TransactionStore {
	items := Canonical(universe)
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item] = i
	}

	store := &TransactionStore{
		items:        items,
		index:        index,
		transactions: make([][]int, len(baskets)),
	}

	seen := make(map[int]struct{})
	for tid, basket := range baskets {
		encoded := make([]int, 0, len(basket))
		for _, item := range basket {
			idx, ok := index[item]
			if !ok {
				store.dropped++
				continue
			}
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			encoded = append(encoded, idx)
		}
		sort.Ints(encoded)
		store.transactions[tid] = encoded

		for idx := range seen {
			delete(seen, idx)
		}
	}

	return store
}

// NewStoreFromTransactions builds a store from caller transactions.
//
//nolint:gocritic // rangeValCopy: Transaction is small
func NewStoreFromTransactions(transactions []Transaction, universe []string) *TransactionStore {
	baskets := make([][]string, len(transactions))
	for i, tx := range transactions {
		baskets[i] = tx.Items
	}
	return NewTransactionStore(baskets, universe)
}

// UniverseOf returns the distinct items appearing in the baskets, sorted.
func UniverseOf(baskets [][]string) []string {
	set := make(map[string]struct{})
	for _, basket := range baskets {
		for _, item := range basket {
			set[item] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of transactions (N).
func (s *TransactionStore) Len() int {
	return len(s.transactions)
}

// ItemCount returns the size of the item universe.
func (s *TransactionStore) ItemCount() int {
	return len(s.items)
}

// Items returns a copy of the sorted item universe.
func (s *TransactionStore) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns the item id for an encoded index.
func (s *TransactionStore) Item(idx int) string {
	return s.items[idx]
}

// Index returns the encoded index of an item id.
func (s *TransactionStore) Index(item string) (int, bool) {
	idx, ok := s.index[item]
	return idx, ok
}

// Transaction returns the encoded items of transaction tid.
// The returned slice is shared and must not be modified.
func (s *TransactionStore) Transaction(tid int) []int {
	return s.transactions[tid]
}

// Decode converts ascending encoded indices to canonical item ids.
func (s *TransactionStore) Decode(encoded []int) []string {
	out := make([]string, len(encoded))
	for i, idx := range encoded {
		out[i] = s.items[idx]
	}
	return out
}

// Dropped returns how many item occurrences fell outside the universe.
func (s *TransactionStore) Dropped() int {
	return s.dropped
}

// Support converts an absolute count to a fraction of all transactions.
func (s *TransactionStore) Support(count int) float64 {
	if len(s.transactions) == 0 {
		return 0
	}
	return float64(count) / float64(len(s.transactions))
}

// Itemset builds a canonical itemset from ascending encoded indices.
func (s *TransactionStore) Itemset(encoded []int, count int) Itemset {
	return Itemset{
		Items:   s.Decode(encoded),
		Support: s.Support(count),
		Count:   count,
	}
}

// MinSupportCount returns the minimum number of transactions an itemset must
// appear in: ceil(minSupport * n), never less than one.
func MinSupportCount(minSupport float64, n int) int {
	count := int(math.Ceil(minSupport*float64(n) - supportEpsilon))
	if count < 1 {
		count = 1
	}
	return count
}
