// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/basketlytics/internal/models"
)

const sampleRequest = `{
	"transactions": [
		{"invoiceNo": "1", "date": "2024-03-01", "items": ["A", "B"]},
		{"invoiceNo": "2", "date": "2024-03-01", "items": ["A", "B", "C"]},
		{"invoiceNo": "3", "date": "2024-03-01", "items": ["A", "C"]},
		{"invoiceNo": "4", "date": "2024-03-02", "items": ["B", "C"]},
		{"invoiceNo": "5", "date": "2024-03-02", "items": ["A", "B"]}
	],
	"productMap": {"A": "Apple", "B": "Bread", "C": "Cheese"},
	"minSupport": 0.4,
	"minConfidence": 0.5
}`

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

func decodeAnalyze(t *testing.T, out string) models.AnalyzeResponse {
	t.Helper()

	var resp models.AnalyzeResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not an AnalyzeResponse: %v\n%s", err, out)
	}
	return resp
}

func TestAnalyze_Stdin(t *testing.T) {
	out, err := run(t, sampleRequest, "analyze")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	resp := decodeAnalyze(t, out)
	if resp.Algorithm != "eclat" {
		t.Errorf("Algorithm = %q, want eclat (default)", resp.Algorithm)
	}
	if resp.Empty || len(resp.Itemsets) == 0 {
		t.Fatalf("Itemsets = %v, want frequent itemsets", resp.Itemsets)
	}
	if resp.Params.MinSupport != 0.4 || resp.Params.TransactionCount != 5 {
		t.Errorf("Params = %+v", resp.Params)
	}
	if got := resp.Itemsets[0].Items[0].Name; got != "Apple" {
		t.Errorf("Itemsets[0] name = %q, want Apple", got)
	}
	if len(resp.Rules) == 0 {
		t.Error("Rules empty, want rules at minConfidence 0.5")
	}
}

func TestAnalyze_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basket.json")
	if err := os.WriteFile(path, []byte(sampleRequest), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, err := run(t, "", "analyze", "--input", path, "--algorithm", "fpgrowth")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if resp := decodeAnalyze(t, out); resp.Algorithm != "fpgrowth" {
		t.Errorf("Algorithm = %q, want fpgrowth", resp.Algorithm)
	}
}

func TestAnalyze_FlagsOverrideRequest(t *testing.T) {
	out, err := run(t, sampleRequest, "analyze", "--min-support", "0.9")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	resp := decodeAnalyze(t, out)
	if resp.Params.MinSupport != 0.9 {
		t.Errorf("MinSupport = %v, want 0.9 from flag", resp.Params.MinSupport)
	}
	if !resp.Empty || resp.Message == "" {
		t.Errorf("Empty = %v, Message = %q, want empty result with advice", resp.Empty, resp.Message)
	}
}

func TestAnalyze_Compare(t *testing.T) {
	out, err := run(t, sampleRequest, "analyze", "--compare", "--pretty")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if !strings.Contains(out, "\n  ") {
		t.Error("--pretty output is not indented")
	}

	resp := decodeAnalyze(t, out)
	if resp.Comparison == nil {
		t.Fatal("Comparison = nil, want both algorithms compared")
	}
	if !resp.Comparison.Equivalent {
		t.Error("Comparison.Equivalent = false, want the miners to agree")
	}
	if len(resp.ProcessLogs.Eclat) == 0 || len(resp.ProcessLogs.FPGrowth) == 0 {
		t.Error("ProcessLogs missing a trace in compare mode")
	}
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{name: "empty input", stdin: "", args: []string{"analyze"}, wantErr: "stdin is empty"},
		{name: "bad json", stdin: "{", args: []string{"analyze"}, wantErr: "invalid JSON"},
		{name: "missing file", args: []string{"analyze", "-i", "/nonexistent/basket.json"}, wantErr: "failed to open input"},
		{name: "zero support flag", stdin: sampleRequest, args: []string{"analyze", "--min-support", "0"}, wantErr: "minSupport"},
		{name: "unknown algorithm", stdin: sampleRequest, args: []string{"analyze", "--algorithm", "apriori"}, wantErr: "algorithm"},
		{name: "no transactions", stdin: `{"transactions": []}`, args: []string{"analyze"}, wantErr: "transactions"},
		{name: "no universe", stdin: `{"transactions": [{"items": ["A"]}]}`, args: []string{"analyze"}, wantErr: "items"},
		{name: "positional args", stdin: sampleRequest, args: []string{"analyze", "extra"}, wantErr: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDaily(t *testing.T) {
	out, err := run(t, sampleRequest, "daily", "--date", "2024-03-02")
	if err != nil {
		t.Fatalf("daily error = %v", err)
	}

	var resp models.DailyResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not a DailyResponse: %v", err)
	}
	if resp.PreviousDate != "2024-03-01" || resp.TargetDate != "2024-03-02" {
		t.Errorf("dates = %q -> %q", resp.TargetDate, resp.PreviousDate)
	}
	if resp.TransactionCount != 3 {
		t.Errorf("TransactionCount = %d, want 3", resp.TransactionCount)
	}
	if len(resp.Result.Itemsets) == 0 {
		t.Error("Result.Itemsets empty, want frequent itemsets for 2024-03-01")
	}
}

func TestDaily_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing date", args: []string{"daily"}, wantErr: "targetDate"},
		{name: "unparseable date", args: []string{"daily", "--date", "someday"}, wantErr: "targetDate"},
		{name: "no transactions that day", args: []string{"daily", "--date", "2024-05-01"}, wantErr: "2024-04-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, sampleRequest, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestAlgorithms(t *testing.T) {
	out, err := run(t, "", "algorithms")
	if err != nil {
		t.Fatalf("algorithms error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "* eclat") {
		t.Errorf("lines[0] = %q, want eclat marked as default", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  fpgrowth") {
		t.Errorf("lines[1] = %q, want fpgrowth", lines[1])
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if out != "basketctl dev\n" {
		t.Errorf("version output = %q", out)
	}
}
