// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

/*
Package cache provides a thread-safe in-memory LRU cache with TTL support.

The API layer uses it to serve repeated analysis requests without mining the
same transactions again. Mining is deterministic, so a response computed for
one request body is valid for an identical body until the TTL expires.

# Overview

  - Generic values: LRU[V] stores any value type
  - O(1) Get and Add via a map over a doubly-linked list
  - Capacity-bounded with least recently used eviction
  - Lazy expiration on Get, plus CleanupExpired for periodic sweeps
    (run by the cache sweeper service in the supervisor tree)
  - Hit, miss and eviction counters via Stats, reported by /api/v1/health

# Usage

	results := cache.NewLRU[models.AnalyzeResponse](256, 10*time.Minute)

	key, err := cache.GenerateKey("analyze", req)
	if err == nil {
	    if resp, ok := results.Get(key); ok {
	        return resp
	    }
	}
	resp := compute(req)
	results.Add(key, resp)

# Keys

GenerateKey hashes the JSON encoding of the request with SHA-256 and prefixes
the namespace, so the analyze and daily endpoints never share entries.
*/
package cache
