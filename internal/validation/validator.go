// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/basketlytics/internal/analysis"
	"github.com/tomtom215/basketlytics/internal/basket"
)

// ErrorCode is the API error code for request validation failures.
const ErrorCode = "VALIDATION_ERROR"

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one failed validation rule.
type FieldError struct {
	// Field is the namespaced JSON path of the field, e.g. "transactions[2].items".
	Field string `json:"field"`

	// Tag is the validation tag that failed.
	Tag string `json:"tag"`

	// Param is the tag parameter, e.g. "1" for "lte=1".
	Param string `json:"param,omitempty"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Message
}

// RequestValidationError is returned by ValidateStruct when one or more rules fail.
type RequestValidationError struct {
	fields []FieldError
}

// Fields returns the individual field failures in declaration order.
func (ve *RequestValidationError) Fields() []FieldError {
	return ve.fields
}

// Error returns all messages joined by "; ".
func (ve *RequestValidationError) Error() string {
	if len(ve.fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.fields))
	for i, f := range ve.fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

// APIError mirrors models.APIError without importing it.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the failures into a VALIDATION_ERROR response body.
// A single failure reports its field directly; several are listed under "fields".
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.fields) {
	case 0:
		return &APIError{Code: ErrorCode, Message: "Validation failed"}
	case 1:
		f := ve.fields[0]
		return &APIError{
			Code:    ErrorCode,
			Message: f.Message,
			Details: map[string]interface{}{
				"field": f.Field,
				"tag":   f.Tag,
			},
		}
	default:
		return &APIError{
			Code:    ErrorCode,
			Message: ve.Error(),
			Details: map[string]interface{}{
				"fields": ve.fields,
			},
		}
	}
}

// GetValidator returns the singleton validator instance with the custom
// basketdate and basketalgorithm rules registered. Thread-safe.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)

		// Registration only fails for an empty tag or nil function.
		_ = validate.RegisterValidation("basketdate", validateBasketDate)
		_ = validate.RegisterValidation("basketalgorithm", validateBasketAlgorithm)
	})

	return validate
}

// ValidateStruct validates s with the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if it fails.
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{fields: []FieldError{{
			Field:   "request",
			Tag:     "invalid",
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fields[i] = FieldError{
			Field:   fieldPath(fe),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translateError(fe),
		}
	}
	return &RequestValidationError{fields: fields}
}

// jsonFieldName reports fields by their JSON names so messages match the request body.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// fieldPath turns a validator namespace into the JSON path of the field by
// dropping the root type name and any embedded type names, which are the only
// capitalized segments: "DailyAnalyzeRequest.AnalyzeRequest.transactions[0].items"
// becomes "transactions[0].items".
func fieldPath(fe validator.FieldError) string {
	segments := strings.Split(fe.Namespace(), ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	for len(segments) > 1 && isExported(segments[0]) {
		segments = segments[1:]
	}
	return strings.Join(segments, ".")
}

func isExported(name string) bool {
	return name != "" && unicode.IsUpper([]rune(name)[0])
}

// validateBasketDate accepts the date formats understood by the daily analysis.
func validateBasketDate(fl validator.FieldLevel) bool {
	_, err := analysis.ParseDate(fl.Field().String())
	return err == nil
}

// validateBasketAlgorithm accepts the miner names, case-insensitively.
func validateBasketAlgorithm(fl validator.FieldLevel) bool {
	_, err := basket.ParseAlgorithm(fl.Field().String())
	return err == nil
}

// messageTemplates maps validation tags to message templates taking the field name.
var messageTemplates = map[string]string{
	"required":        "%s is required",
	"basketdate":      "%s must be a date in YYYY-MM-DD, DD/MM/YYYY, MM/DD/YYYY or DD-MM-YYYY format",
	"basketalgorithm": "%s must be one of: eclat, fpgrowth",
}

// paramTemplates maps validation tags to templates taking the field name and parameter.
var paramTemplates = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fieldPath(fe)
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := messageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := paramTemplates[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	verb, noun := "be", ""
	switch fe.Kind() {
	case reflect.String:
		verb, noun = "have", " characters"
	case reflect.Slice, reflect.Map, reflect.Array:
		verb, noun = "have", " entries"
	}

	switch tag {
	case "min":
		return fmt.Sprintf("%s must %s at least %s%s", field, verb, param, noun)
	case "max":
		return fmt.Sprintf("%s must %s at most %s%s", field, verb, param, noun)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
