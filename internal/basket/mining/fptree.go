// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package mining

import "sort"

// fpNode is one node of a frequent-pattern tree.
type fpNode struct {
	item     int
	count    int
	parent   *fpNode
	children map[int]*fpNode

	// next links nodes carrying the same item across branches.
	next *fpNode
}

// fpTree is a prefix tree of transactions whose items are ordered by
// descending frequency, so that common prefixes share nodes.
type fpTree struct {
	root *fpNode

	// heads is the header table: item -> first node in its link chain.
	heads map[int]*fpNode

	// counts holds the support count of every frequent item in the tree.
	counts map[int]int

	// order lists frequent items by descending count, ties by ascending index.
	order []int

	nodes int
}

// weightedPath is a transaction or conditional prefix path with its multiplicity.
type weightedPath struct {
	items []int
	count int
}

// buildTree counts item frequencies over paths, drops items below minCount and
// inserts the remaining items of every path in frequency order.
func buildTree(paths []weightedPath, minCount int) *fpTree {
	counts := make(map[int]int)
	for _, p := range paths {
		for _, item := range p.items {
			counts[item] += p.count
		}
	}

	tree := &fpTree{
		root:   &fpNode{item: -1, children: make(map[int]*fpNode)},
		heads:  make(map[int]*fpNode),
		counts: make(map[int]int),
	}

	for item, count := range counts {
		if count >= minCount {
			tree.counts[item] = count
			tree.order = append(tree.order, item)
		}
	}
	sort.Slice(tree.order, func(i, j int) bool {
		a, b := tree.order[i], tree.order[j]
		if tree.counts[a] != tree.counts[b] {
			return tree.counts[a] > tree.counts[b]
		}
		return a < b
	})

	rank := make(map[int]int, len(tree.order))
	for i, item := range tree.order {
		rank[item] = i
	}

	ordered := make([]int, 0, 8)
	for _, p := range paths {
		ordered = ordered[:0]
		for _, item := range p.items {
			if _, ok := rank[item]; ok {
				ordered = append(ordered, item)
			}
		}
		if len(ordered) == 0 {
			continue
		}
		sort.Slice(ordered, func(i, j int) bool {
			return rank[ordered[i]] < rank[ordered[j]]
		})
		tree.insert(ordered, p.count)
	}

	return tree
}

// insert adds a frequency-ordered path to the tree.
func (t *fpTree) insert(items []int, count int) {
	node := t.root
	for _, item := range items {
		child, ok := node.children[item]
		if !ok {
			child = &fpNode{
				item:     item,
				parent:   node,
				children: make(map[int]*fpNode),
				next:     t.heads[item],
			}
			node.children[item] = child
			t.heads[item] = child
			t.nodes++
		}
		child.count += count
		node = child
	}
}

// conditionalBase returns the prefix paths ending at item, each weighted by
// the count of the node that ends it.
func (t *fpTree) conditionalBase(item int) []weightedPath {
	var base []weightedPath
	for node := t.heads[item]; node != nil; node = node.next {
		var prefix []int
		for p := node.parent; p != nil && p != t.root; p = p.parent {
			prefix = append(prefix, p.item)
		}
		if len(prefix) > 0 {
			base = append(base, weightedPath{items: prefix, count: node.count})
		}
	}
	return base
}
