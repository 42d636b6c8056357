// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package validation

import (
	"strings"
	"testing"
)

type SampleTransaction struct {
	Items []string `json:"items" validate:"required,min=1,dive,required"`
}

type SampleRequest struct {
	Transactions []SampleTransaction `json:"transactions" validate:"required,min=1,dive"`
	MinSupport   *float64            `json:"minSupport,omitempty" validate:"omitnil,gt=0,lte=1"`
	Algorithm    string              `json:"algorithm,omitempty" validate:"omitempty,basketalgorithm"`
	Note         string              `json:"note,omitempty" validate:"omitempty,max=5"`
}

type SampleDailyRequest struct {
	SampleRequest
	TargetDate string `json:"targetDate" validate:"required,basketdate"`
}

func ptr(v float64) *float64 { return &v }

func validRequest() SampleRequest {
	return SampleRequest{Transactions: []SampleTransaction{{Items: []string{"A", "B"}}}}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() = nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(r *SampleRequest)
	}{
		{name: "defaults", mutate: func(*SampleRequest) {}},
		{name: "support of one", mutate: func(r *SampleRequest) { r.MinSupport = ptr(1) }},
		{name: "small support", mutate: func(r *SampleRequest) { r.MinSupport = ptr(0.0001) }},
		{name: "eclat", mutate: func(r *SampleRequest) { r.Algorithm = "eclat" }},
		{name: "fp-growth mixed case", mutate: func(r *SampleRequest) { r.Algorithm = "FP-Growth" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRequest()
			tt.mutate(&req)
			if err := ValidateStruct(&req); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(r *SampleRequest)
		wantField string
		wantTag   string
	}{
		{
			name:      "missing transactions",
			mutate:    func(r *SampleRequest) { r.Transactions = nil },
			wantField: "transactions",
			wantTag:   "required",
		},
		{
			name:      "empty basket",
			mutate:    func(r *SampleRequest) { r.Transactions = append(r.Transactions, SampleTransaction{Items: []string{}}) },
			wantField: "transactions[1].items",
			wantTag:   "min",
		},
		{
			name:      "empty item id",
			mutate:    func(r *SampleRequest) { r.Transactions[0].Items = []string{"A", ""} },
			wantField: "transactions[0].items[1]",
			wantTag:   "required",
		},
		{
			name:      "explicit zero support",
			mutate:    func(r *SampleRequest) { r.MinSupport = ptr(0) },
			wantField: "minSupport",
			wantTag:   "gt",
		},
		{
			name:      "support above one",
			mutate:    func(r *SampleRequest) { r.MinSupport = ptr(1.5) },
			wantField: "minSupport",
			wantTag:   "lte",
		},
		{
			name:      "unknown algorithm",
			mutate:    func(r *SampleRequest) { r.Algorithm = "apriori" },
			wantField: "algorithm",
			wantTag:   "basketalgorithm",
		},
		{
			name:      "string too long",
			mutate:    func(r *SampleRequest) { r.Note = "too long" },
			wantField: "note",
			wantTag:   "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validRequest()
			tt.mutate(&req)

			err := ValidateStruct(&req)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			fields := err.Fields()
			if len(fields) != 1 {
				t.Fatalf("got %d field errors, want 1: %v", len(fields), err)
			}
			if fields[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", fields[0].Field, tt.wantField)
			}
			if fields[0].Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", fields[0].Tag, tt.wantTag)
			}
			if !strings.HasPrefix(fields[0].Message, tt.wantField) {
				t.Errorf("Message = %q, want it to start with %q", fields[0].Message, tt.wantField)
			}
		})
	}
}

func TestValidateStruct_EmbeddedPaths(t *testing.T) {
	t.Parallel()

	req := SampleDailyRequest{SampleRequest: validRequest(), TargetDate: "someday"}
	req.Transactions[0].Items = nil

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}

	got := map[string]string{}
	for _, f := range err.Fields() {
		got[f.Field] = f.Tag
	}
	if got["transactions[0].items"] != "required" {
		t.Errorf("embedded field path missing: %v", got)
	}
	if got["targetDate"] != "basketdate" {
		t.Errorf("targetDate error missing: %v", got)
	}
}

func TestBasketDateValidation(t *testing.T) {
	t.Parallel()

	valid := []string{"2024-03-02", "02/03/2024", "12/31/2024", "02-03-2024", "2024-03-02T10:00:00Z"}
	for _, date := range valid {
		req := SampleDailyRequest{SampleRequest: validRequest(), TargetDate: date}
		if err := ValidateStruct(&req); err != nil {
			t.Errorf("ValidateStruct(targetDate=%q) = %v, want nil", date, err)
		}
	}

	invalid := []string{"", "yesterday", "2024/03/02", "31/31/2024"}
	for _, date := range invalid {
		req := SampleDailyRequest{SampleRequest: validRequest(), TargetDate: date}
		if err := ValidateStruct(&req); err == nil {
			t.Errorf("ValidateStruct(targetDate=%q) = nil, want error", date)
		}
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.MinSupport = ptr(2)

	apiErr := ValidateStruct(&req).ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "minSupport must be less than or equal to 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "minSupport" {
		t.Errorf("Details[field] = %v, want minSupport", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := validRequest()
	req.MinSupport = ptr(-1)
	req.Algorithm = "apriori"

	apiErr := ValidateStruct(&req).ToAPIError()

	fields, ok := apiErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "; ") {
		t.Errorf("Message = %q, want joined messages", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	t.Parallel()

	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	t.Parallel()

	err := ValidateStruct("not a struct")
	if err == nil {
		t.Fatal("ValidateStruct(string) = nil, want error")
	}
	if err.Fields()[0].Field != "request" {
		t.Errorf("Field = %q, want request", err.Fields()[0].Field)
	}
}
