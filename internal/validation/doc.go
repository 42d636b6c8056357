// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator checks API request bodies before they
// reach the analysis engine. Fields are reported by their JSON path, so a
// failure in the third transaction reads "transactions[2].items is required".
//
// # Custom Tags
//
//   - basketdate: a date accepted by the daily analysis (YYYY-MM-DD,
//     DD/MM/YYYY, MM/DD/YYYY, DD-MM-YYYY, RFC3339)
//   - basketalgorithm: eclat or fpgrowth, case-insensitive
//
// # Usage
//
//	type AnalyzeRequest struct {
//	    Transactions []TransactionInput `json:"transactions" validate:"required,min=1,dive"`
//	    MinSupport   *float64           `json:"minSupport" validate:"omitnil,gt=0,lte=1"`
//	    Algorithm    string             `json:"algorithm" validate:"omitempty,basketalgorithm"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # API Error Format
//
//	// Single field error
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "minSupport must be less than or equal to 1",
//	    "details": {"field": "minSupport", "tag": "lte"}
//	}
//
//	// Multiple field errors
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "transactions[0].items must have at least 1 entries; targetDate is required",
//	    "details": {"fields": [{"field": "...", "tag": "...", "message": "..."}]}
//	}
//
// Semantic checks that need the whole request, such as resolving the item
// universe, stay in the analysis engine and surface as INVALID_INPUT.
package validation
