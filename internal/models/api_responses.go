// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"itemsets": [...], "rules": [...], "empty": false, ...},
//	  "metadata": {
//	    "timestamp": "2026-03-02T12:00:00Z",
//	    "request_id": "6f1c...",
//	    "query_time_ms": 45
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "INVALID_INPUT",
//	    "message": "invalid input: items: no item universe: provide items or productMap",
//	    "details": {"field": "items"}
//	  },
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// QueryTimeMS is the end-to-end analysis time in milliseconds. It is omitted
// for endpoints that do no mining.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - INVALID_JSON: request body is not valid JSON
//   - VALIDATION_ERROR: request fields failed declarative validation
//   - INVALID_INPUT: the analysis rejected the input before mining
//   - ANALYSIS_TIMEOUT: the analysis exceeded its deadline
//   - ANALYSIS_ERROR: unexpected failure
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - PAYLOAD_TOO_LARGE: request body above the configured cap
//   - SERVICE_UNAVAILABLE: no miners registered
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
