// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/basketlytics/internal/basket"
	"github.com/tomtom215/basketlytics/internal/metrics"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "2024-03-01", want: "2024-03-01"},
		{input: "2024-03-01T23:30:00Z", want: "2024-03-01"},
		{input: "2024-03-01T23:30:00+05:00", want: "2024-03-01"},
		{input: "01/03/2024", want: "2024-03-01"},
		{input: "12/31/2024", want: "2024-12-31"},
		{input: "31/12/2024", want: "2024-12-31"},
		{input: "01-03-2024", want: "2024-03-01"},
		{input: "1/12/2010 8:26", want: "2010-12-01"},
		{input: " 2024-02-29 ", want: "2024-02-29"},
		{input: "2024-3-1", want: "2024-03-01"},
		{input: "2024-12-5 08:26", want: "2024-12-05"},
		{input: "2024-2-30", wantErr: true},
		{input: "29/02/2023", wantErr: true},
		{input: "13/13/2024", wantErr: true},
		{input: "12-31-2024", wantErr: true},
		{input: "2024/03/01", wantErr: true},
		{input: "yesterday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Format(DateLayout) != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got.Format(DateLayout), tt.want)
			}
			if got.Location() != time.UTC || got.Hour() != 0 {
				t.Errorf("ParseDate(%q) = %v, want midnight UTC", tt.input, got)
			}
		})
	}
}

func dailyTransactions() []basket.Transaction {
	return []basket.Transaction{
		{InvoiceNo: "1", Date: "2024-03-01", Items: []string{"A", "B"}},
		{InvoiceNo: "2", Date: "01/03/2024", Items: []string{"A", "B"}},
		{InvoiceNo: "3", Date: "2024-03-01T18:00:00Z", Items: []string{"A", "C"}},
		{InvoiceNo: "4", Date: "2024-03-02", Items: []string{"D", "E"}},
		{InvoiceNo: "5", Date: "not a date", Items: []string{"A", "B"}},
		{InvoiceNo: "6", Items: []string{"A", "B"}},
	}
}

func TestEngine_AnalyzeDaily(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)

	result, err := engine.AnalyzeDaily(context.Background(), DailyRequest{
		Request: Request{
			Transactions:  dailyTransactions(),
			ProductMap:    map[string]string{"A": "Apple", "B": "Bread", "C": "Cheese", "D": "Dates", "E": "Eggs"},
			Algorithm:     "fpgrowth",
			MinSupport:    0.5,
			MinConfidence: 0.5,
		},
		TargetDate: "02/03/2024",
	})
	if err != nil {
		t.Fatalf("AnalyzeDaily() error = %v", err)
	}

	if result.TargetDate != "2024-03-02" {
		t.Errorf("TargetDate = %q, want 2024-03-02", result.TargetDate)
	}
	if result.PreviousDate != "2024-03-01" {
		t.Errorf("PreviousDate = %q, want 2024-03-01", result.PreviousDate)
	}
	if result.TransactionCount != 3 {
		t.Errorf("TransactionCount = %d, want 3", result.TransactionCount)
	}

	r := result.Result
	if r.Params.ProductCount != 3 {
		t.Errorf("ProductCount = %d, want 3 items seen that day", r.Params.ProductCount)
	}
	if r.Params.Algorithm != "fpgrowth" {
		t.Errorf("Algorithm = %q, want fpgrowth", r.Params.Algorithm)
	}

	// A: 3/3, B: 2/3, {A,B}: 2/3; C: 1/3 is below 0.5.
	if len(r.Itemsets) != 3 {
		t.Errorf("%d itemsets, want 3: %v", len(r.Itemsets), r.Itemsets)
	}
	if len(r.ProcessLogs.FPGrowth) == 0 {
		t.Error("FPGrowth process log is empty")
	}
}

func TestEngine_AnalyzeDaily_MonthBoundary(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	result, err := engine.AnalyzeDaily(context.Background(), DailyRequest{
		Request: Request{
			Transactions: []basket.Transaction{
				{Date: "2024-02-29", Items: []string{"A", "B"}},
			},
		},
		TargetDate: "2024-03-01",
	})
	if err != nil {
		t.Fatalf("AnalyzeDaily() error = %v", err)
	}
	if result.PreviousDate != "2024-02-29" {
		t.Errorf("PreviousDate = %q, want 2024-02-29", result.PreviousDate)
	}
}

func TestEngine_AnalyzeDaily_Errors(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)

	tests := []struct {
		name       string
		targetDate string
		minSupport float64
		wantField  string
		wantReason string
	}{
		{
			name:       "invalid target date",
			targetDate: "someday",
			wantField:  "targetDate",
		},
		{
			name:       "no transactions on previous day",
			targetDate: "2024-06-01",
			wantField:  "transactions",
			wantReason: "no transactions found for previous date: 2024-05-31",
		},
		{
			name:       "threshold checked before date filtering",
			targetDate: "2024-06-01",
			minSupport: 1.5,
			wantField:  "minSupport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := engine.AnalyzeDaily(context.Background(), DailyRequest{
				Request:    Request{Transactions: dailyTransactions(), MinSupport: tt.minSupport},
				TargetDate: tt.targetDate,
			})

			var inputErr *basket.InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("AnalyzeDaily() error = %v, want *basket.InputError", err)
			}
			if inputErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", inputErr.Field, tt.wantField)
			}
			if tt.wantReason != "" && inputErr.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", inputErr.Reason, tt.wantReason)
			}
		})
	}
}

// Not parallel: reads the shared analyses counter.
func TestEngine_AnalyzeDaily_RejectionsCounted(t *testing.T) {
	engine := newTestEngine(t, nil)
	invalid := metrics.AnalysesTotal.WithLabelValues(kindDaily, metrics.OutcomeInvalid)
	before := testutil.ToFloat64(invalid)

	for _, targetDate := range []string{"someday", "2024-06-01"} {
		if _, err := engine.AnalyzeDaily(context.Background(), DailyRequest{
			Request:    Request{Transactions: dailyTransactions()},
			TargetDate: targetDate,
		}); err == nil {
			t.Fatalf("AnalyzeDaily(%q) succeeded, want error", targetDate)
		}
	}

	stats := engine.Stats()
	if stats.Requests != 2 || stats.Invalid != 2 {
		t.Errorf("Stats() = %+v, want 2 requests and 2 invalid", stats)
	}
	if got := testutil.ToFloat64(invalid) - before; got != 2 {
		t.Errorf("daily invalid outcomes recorded = %v, want 2", got)
	}
}

func TestEngine_AnalyzeDaily_Empty(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	result, err := engine.AnalyzeDaily(context.Background(), DailyRequest{
		Request: Request{
			Transactions: []basket.Transaction{
				{Date: "2024-03-01", Items: []string{"A"}},
				{Date: "2024-03-01", Items: []string{"B"}},
			},
			MinSupport: 1.0,
		},
		TargetDate: "2024-03-02",
	})
	if err != nil {
		t.Fatalf("AnalyzeDaily() error = %v", err)
	}
	if !result.Result.Empty {
		t.Fatal("Empty = false, want true")
	}
	want := "No frequent itemsets found for 2024-03-01. Try lowering the minimum support."
	if result.Result.Message != want {
		t.Errorf("Message = %q, want %q", result.Result.Message, want)
	}
}
