// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

// Package rules derives association rules from frequent itemsets.
//
// For every itemset with at least two members, each non-empty proper subset is
// tried as an antecedent with its complement as the consequent:
//
//	confidence = count(itemset) / count(antecedent)
//	lift       = confidence * N / count(consequent)
//
// Ratios are taken over transaction counts so that exact fractions such as
// 3/4 compare equal to a threshold of 0.75. Itemsets without a Count have it
// derived from Support and N.
//
// Both sides must themselves be present among the supplied itemsets. A split
// whose antecedent or consequent is missing is skipped silently; with itemsets
// capped at three members this is expected and not an error.
package rules

import (
	"math"
	"sort"

	"github.com/tomtom215/basketlytics/internal/basket"
)

// DefaultMaxItems bounds the itemset size considered for rule generation.
// Subset masks are enumerated in a native int, so the bound must stay well
// below the int width.
const DefaultMaxItems = 16

// confidenceEpsilon matches the tolerance used for the support threshold.
const confidenceEpsilon = 1e-9

// Generator derives association rules. It holds no per-call state and is safe
// for concurrent use.
type Generator struct {
	maxItems int
}

// NewGenerator creates a rule generator that ignores itemsets with more than
// maxItems members. Values outside [2, DefaultMaxItems] select
// DefaultMaxItems.
func NewGenerator(maxItems int) *Generator {
	if maxItems < 2 || maxItems > DefaultMaxItems {
		maxItems = DefaultMaxItems
	}
	return &Generator{maxItems: maxItems}
}

// Generate returns every rule whose confidence meets minConfidence, sorted by
// descending lift. Rules with equal lift keep generation order, which follows
// the order of itemsets and then ascending subset mask.
//
// transactionCount is the N the supports were computed against; a
// non-positive value yields no rules.
func (g *Generator) Generate(itemsets []basket.Itemset, transactionCount int, minConfidence float64, trace *basket.Trace) []basket.Rule {
	trace.Addf("Generating association rules with minimum confidence: %.2f%%", minConfidence*100)

	rules := make([]basket.Rule, 0)
	if transactionCount <= 0 || len(itemsets) == 0 {
		trace.Addf("Generated 0 association rules")
		trace.Addf("Top rule has lift: N/A")
		return rules
	}

	// Lookup from canonical key to transaction count, first occurrence wins.
	lookup := make(map[string]int, len(itemsets))
	candidates := make([]basket.Itemset, 0, len(itemsets))
	for _, s := range itemsets {
		key := s.Key()
		if _, dup := lookup[key]; dup {
			continue
		}
		lookup[key] = countOf(s, transactionCount)
		if len(basket.Canonical(s.Items)) >= 2 {
			candidates = append(candidates, s)
		}
	}
	trace.Addf("Found %d itemsets with 2 or more items for rule generation", len(candidates))

	for _, s := range candidates {
		items := basket.Canonical(s.Items)
		if len(items) > g.maxItems {
			continue
		}
		rules = appendSplits(rules, items, transactionCount, lookup, minConfidence)
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Lift > rules[j].Lift
	})

	trace.Addf("Generated %d association rules", len(rules))
	if len(rules) > 0 {
		trace.Addf("Top rule has lift: %.2f", rules[0].Lift)
	} else {
		trace.Addf("Top rule has lift: N/A")
	}
	return rules
}

// countOf returns the absolute support count of s.
func countOf(s basket.Itemset, n int) int {
	if s.Count > 0 {
		return s.Count
	}
	return int(math.Round(s.Support * float64(n)))
}

// appendSplits enumerates masks 1 .. 2^k-2 over items and appends qualifying rules.
func appendSplits(rules []basket.Rule, items []string, n int, lookup map[string]int, minConfidence float64) []basket.Rule {
	count := lookup[basket.Key(items)]
	if count <= 0 {
		return rules
	}
	support := float64(count) / float64(n)

	k := len(items)
	full := 1<<k - 1

	antecedent := make([]string, 0, k)
	consequent := make([]string, 0, k)
	for mask := 1; mask < full; mask++ {
		antecedent = antecedent[:0]
		consequent = consequent[:0]
		for i, item := range items {
			if mask&(1<<i) != 0 {
				antecedent = append(antecedent, item)
			} else {
				consequent = append(consequent, item)
			}
		}

		antecedentCount, ok := lookup[basket.Key(antecedent)]
		if !ok || antecedentCount <= 0 {
			continue
		}
		confidence := float64(count) / float64(antecedentCount)
		if confidence+confidenceEpsilon < minConfidence {
			continue
		}
		consequentCount, ok := lookup[basket.Key(consequent)]
		if !ok || consequentCount <= 0 {
			continue
		}

		rules = append(rules, basket.Rule{
			Antecedent: append([]string(nil), antecedent...),
			Consequent: append([]string(nil), consequent...),
			Support:    support,
			Confidence: confidence,
			Lift:       float64(count) * float64(n) / (float64(antecedentCount) * float64(consequentCount)),
		})
	}
	return rules
}
