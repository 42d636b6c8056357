// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package basket

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput indicates the caller supplied unusable analysis input.
// It is never retried; the caller must correct the request and resubmit.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which input was rejected and why.
type InputError struct {
	// Field names the rejected input, e.g. "transactions" or "minSupport".
	Field string

	// Reason is a human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// IsInvalidInput reports whether err is an input error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// ValidateThreshold checks that v is a number in (0, 1].
func ValidateThreshold(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InputError{Field: field, Reason: "must be a finite number"}
	}
	if v <= 0 || v > 1 {
		return &InputError{Field: field, Reason: fmt.Sprintf("must be in (0, 1], got %g", v)}
	}
	return nil
}
