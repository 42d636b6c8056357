// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package basket

import (
	"fmt"
	"sync"
)

// Trace collects ordered, human-readable progress lines for one algorithm run.
// The lines are for display only and carry no parsing contract.
//
// A nil *Trace discards everything, so callers that do not need progress
// output can pass nil.
type Trace struct {
	mu    sync.Mutex
	lines []string
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{lines: make([]string, 0, 16)}
}

// Addf appends a formatted line.
func (t *Trace) Addf(format string, args ...interface{}) {
	if t == nil {
		return
	}
	line := fmt.Sprintf(format, args...)

	t.mu.Lock()
	t.lines = append(t.lines, line)
	t.mu.Unlock()
}

// Lines returns a copy of the collected lines. Never nil.
func (t *Trace) Lines() []string {
	if t == nil {
		return []string{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Len returns the number of collected lines.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines)
}
