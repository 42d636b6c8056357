// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package basket

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// MaxItemsetSize is the largest itemset any miner produces.
// Enumeration beyond triples grows combinatorially with the item universe.
const MaxItemsetSize = 3

// keySeparator joins canonical members into a lookup key.
const keySeparator = "\x1f"

// Algorithm identifies a frequent itemset mining strategy.
type Algorithm int

const (
	// AlgorithmEclat mines with vertical tid-list intersections.
	AlgorithmEclat Algorithm = iota
	// AlgorithmFPGrowth mines with a frequency-ordered prefix tree.
	AlgorithmFPGrowth
)

// String returns the wire name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmEclat:
		return "eclat"
	case AlgorithmFPGrowth:
		return "fpgrowth"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable algorithm name used in trace logs.
func (a Algorithm) DisplayName() string {
	switch a {
	case AlgorithmEclat:
		return "Eclat"
	case AlgorithmFPGrowth:
		return "FP-Growth"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a != AlgorithmEclat && a != AlgorithmFPGrowth {
		return nil, fmt.Errorf("unknown algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Algorithms returns every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmEclat, AlgorithmFPGrowth}
}

// ParseAlgorithm converts a case-insensitive name to an Algorithm.
// Accepts "eclat", "fpgrowth", "fp-growth" and "fp_growth".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "eclat":
		return AlgorithmEclat, nil
	case "fpgrowth", "fp-growth", "fp_growth":
		return AlgorithmFPGrowth, nil
	default:
		return AlgorithmEclat, &InputError{
			Field:  "algorithm",
			Reason: fmt.Sprintf("unknown algorithm %q (want eclat or fpgrowth)", name),
		}
	}
}

// Transaction is a single basket as supplied by the caller.
type Transaction struct {
	// InvoiceNo is the optional source invoice identifier.
	InvoiceNo string `json:"invoiceNo,omitempty"`

	// Date is the optional purchase date in any format accepted by the daily analysis.
	Date string `json:"date,omitempty"`

	// Items lists the purchased item ids. Duplicates are allowed and collapse.
	Items []string `json:"items"`
}

// Itemset is a frequent set of items in canonical order.
type Itemset struct {
	// Items are the member item ids sorted lexicographically.
	Items []string `json:"items"`

	// Support is the fraction of transactions containing every member.
	Support float64 `json:"support"`

	// Count is the number of transactions containing every member.
	Count int `json:"count"`
}

// Key returns the canonical lookup key of the itemset.
func (s Itemset) Key() string {
	return Key(s.Items)
}

// Size returns the number of members.
func (s Itemset) Size() int {
	return len(s.Items)
}

// Rule is an association rule derived from one frequent itemset.
type Rule struct {
	// Antecedent is the left-hand side, in canonical order.
	Antecedent []string `json:"antecedent"`

	// Consequent is the right-hand side, in canonical order.
	Consequent []string `json:"consequent"`

	// Support is the support of antecedent and consequent together.
	Support float64 `json:"support"`

	// Confidence is support(union) / support(antecedent).
	Confidence float64 `json:"confidence"`

	// Lift is confidence / support(consequent).
	Lift float64 `json:"lift"`
}

// Key identifies the rule by its antecedent and consequent.
func (r Rule) Key() string {
	return Key(r.Antecedent) + "=>" + Key(r.Consequent)
}

// Miner mines frequent itemsets from a transaction store.
//
// Implementations must honor MaxItemsetSize, must not emit duplicate itemsets,
// and must return items in canonical order. A store with no transactions is an
// input error; an empty universe yields an empty result.
type Miner interface {
	// Name returns the algorithm wire name.
	Name() string

	// Algorithm returns the strategy implemented by the miner.
	Algorithm() Algorithm

	// Description returns a short human-readable summary.
	Description() string

	// Mine returns every itemset whose support meets minSupport.
	Mine(ctx context.Context, store *TransactionStore, minSupport float64, trace *Trace) ([]Itemset, error)
}

// Key returns the canonical key for a set of item ids.
// The input is not modified.
func Key(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	sorted := Canonical(items)
	return strings.Join(sorted, keySeparator)
}

// Canonical returns a sorted, de-duplicated copy of items.
func Canonical(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	sort.Strings(out)

	n := 0
	for i, item := range out {
		if i > 0 && item == out[n-1] {
			continue
		}
		out[n] = item
		n++
	}
	return out[:n]
}

// SortItemsets orders itemsets by size, then by canonical key.
// Miners use it so that output is reproducible regardless of strategy.
func SortItemsets(itemsets []Itemset) {
	sort.SliceStable(itemsets, func(i, j int) bool {
		if len(itemsets[i].Items) != len(itemsets[j].Items) {
			return len(itemsets[i].Items) < len(itemsets[j].Items)
		}
		return lessItems(itemsets[i].Items, itemsets[j].Items)
	})
}

// lessItems compares two equal-length canonical item lists element-wise.
func lessItems(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// CountBySize returns the number of itemsets of each size.
func CountBySize(itemsets []Itemset) map[int]int {
	counts := make(map[int]int, MaxItemsetSize)
	for _, s := range itemsets {
		counts[len(s.Items)]++
	}
	return counts
}
