// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

/*
Package models defines the HTTP wire types for the Basketlytics API.

Request types carry go-playground/validator tags checked by internal/validation
before a request reaches the analysis engine. Response types wrap engine
results with display names resolved from the request's productMap and inline
item names.

Key Components:

  - APIResponse, Metadata, APIError: the response envelope used by every endpoint
  - AnalyzeRequest, DailyAnalyzeRequest: analysis request bodies
  - AnalyzeResponse, DailyResponse: analysis results with ItemRef{id, name}
  - AlgorithmInfo, HealthResponse: discovery and health endpoints

Example request:

	{
	  "transactions": [
	    {"invoiceNo": "536365", "date": "2010-12-01", "items": ["85123A", "71053"]},
	    {"items": ["85123A", "84406B"]}
	  ],
	  "items": [{"id": "85123A", "name": "WHITE HANGING HEART T-LIGHT HOLDER"}, "71053", "84406B"],
	  "minSupport": 0.5,
	  "algorithm": "fpgrowth"
	}
*/
package models
