// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package analysis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/basketlytics/internal/basket"
	"github.com/tomtom215/basketlytics/internal/metrics"
)

// DateLayout is the normalized calendar date format.
const DateLayout = "2006-01-02"

// shortDateLayout accepts ISO dates with one-digit month or day.
const shortDateLayout = "2006-1-2"

// ParseDate parses a calendar date in one of the accepted formats:
//
//	2024-03-01            ISO date
//	2024-3-1              ISO date without zero padding
//	2024-03-01T10:15:00Z  RFC 3339 timestamp (date part only)
//	01/03/2024            DD/MM/YYYY
//	12/31/2024            MM/DD/YYYY, used only when DD/MM is impossible
//	01-03-2024            DD-MM-YYYY
//
// A trailing time of day separated by a space ("1/12/2010 8:26") is ignored.
// Days and months may have one or two digits. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	if fields := strings.Fields(s); len(fields) > 1 {
		s = fields[0]
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(shortDateLayout, s); err == nil {
		return t, nil
	}

	sep := "/"
	if strings.Count(s, "-") == 2 {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 || len(parts[2]) != 4 {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}

	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}

	if t, ok := civilDate(year, second, first); ok {
		return t, nil
	}
	if sep == "/" {
		if t, ok := civilDate(year, first, second); ok {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// civilDate builds a date and rejects values time.Date would normalize.
func civilDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

// AnalyzeDaily analyzes the transactions of the calendar day before
// req.TargetDate. The item universe is the set of items sold that day.
// Transactions without a parseable date are ignored.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) AnalyzeDaily(ctx context.Context, req DailyRequest) (*DailyResult, error) {
	start := time.Now()

	target, err := ParseDate(req.TargetDate)
	if err != nil {
		return nil, e.rejectDaily(start, &basket.InputError{Field: "targetDate", Reason: err.Error()})
	}
	if _, err := resolveThreshold("minSupport", req.MinSupport, e.config.DefaultMinSupport); err != nil {
		return nil, e.rejectDaily(start, err)
	}
	if _, err := resolveThreshold("minConfidence", req.MinConfidence, e.config.DefaultMinConfidence); err != nil {
		return nil, e.rejectDaily(start, err)
	}

	previous := target.AddDate(0, 0, -1)
	previousDate := previous.Format(DateLayout)

	day := make([]basket.Transaction, 0)
	baskets := make([][]string, 0)
	for i := range req.Transactions {
		tx := req.Transactions[i]
		if tx.Date == "" || len(tx.Items) == 0 {
			continue
		}
		d, err := ParseDate(tx.Date)
		if err != nil || !d.Equal(previous) {
			continue
		}
		day = append(day, tx)
		baskets = append(baskets, tx.Items)
	}

	if len(day) == 0 {
		return nil, e.rejectDaily(start, &basket.InputError{
			Field:  "transactions",
			Reason: "no transactions found for previous date: " + previousDate,
		})
	}

	dayReq := req.Request
	dayReq.Transactions = day
	dayReq.Items = basket.UniverseOf(baskets)

	e.logger.Debug().
		Str("previous_date", previousDate).
		Int("transactions", len(day)).
		Msg("analyzing daily patterns")

	emptyMessage := fmt.Sprintf("No frequent itemsets found for %s. Try lowering the minimum support.", previousDate)
	result, err := e.run(ctx, kindDaily, dayReq, emptyMessage)
	if err != nil {
		return nil, err
	}

	return &DailyResult{
		TargetDate:       target.Format(DateLayout),
		PreviousDate:     previousDate,
		TransactionCount: len(day),
		Result:           result,
	}, nil
}

// rejectDaily counts a daily request refused before mining and returns err.
func (e *Engine) rejectDaily(start time.Time, err error) error {
	e.requestCount.Add(1)
	e.invalidCount.Add(1)
	metrics.RecordAnalysis(kindDaily, metrics.OutcomeInvalid, time.Since(start), 0)
	e.logger.Debug().Err(err).Str("kind", kindDaily).Msg("rejected analysis request")
	return err
}
