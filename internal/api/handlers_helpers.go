// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/basketlytics/internal/basket"
	"github.com/tomtom215/basketlytics/internal/logging"
	"github.com/tomtom215/basketlytics/internal/middleware"
	"github.com/tomtom215/basketlytics/internal/models"
	"github.com/tomtom215/basketlytics/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// newMetadata builds response metadata for the request.
func newMetadata(r *http.Request, queryTimeMS int64) models.Metadata {
	return models.Metadata{
		Timestamp:   time.Now().UTC(),
		RequestID:   middleware.GetRequestID(r.Context()),
		QueryTimeMS: queryTimeMS,
	}
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess sends data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, status int, data interface{}, queryTimeMS int64) {
	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: newMetadata(r, queryTimeMS),
	})
}

// respondError sends an error response. A non-nil err is logged with the
// request's correlation fields.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Warn().
			Str("code", code).
			Int("status", status).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: newMetadata(r, 0),
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// decodeJSON reads a size-capped JSON body into dst and validates it. It
// writes the error response itself and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst interface{}) bool {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), nil, err)
		case errors.Is(err, io.EOF):
			respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "request body is empty", nil, err)
		default:
			respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "request body is not valid JSON", nil, err)
		}
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, verr)
		return false
	}
	return true
}

// respondAnalysisError maps an engine error to its HTTP status and code.
func respondAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	var inputErr *basket.InputError
	switch {
	case errors.As(err, &inputErr):
		details := map[string]interface{}{"reason": inputErr.Reason}
		if inputErr.Field != "" {
			details["field"] = inputErr.Field
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidInput, inputErr.Error(), details, err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, ErrCodeTimeout,
			"analysis exceeded its deadline; raise minSupport or send fewer transactions", nil, err)
	case errors.Is(err, context.Canceled):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "analysis was canceled", nil, err)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Analysis failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeAnalysis, "analysis failed", nil, nil)
	}
}
