// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package models

import (
	"errors"

	"github.com/goccy/go-json"

	"github.com/tomtom215/basketlytics/internal/analysis"
	"github.com/tomtom215/basketlytics/internal/basket"
	"github.com/tomtom215/basketlytics/internal/cache"
)

// TransactionInput is one basket in an analysis request.
type TransactionInput struct {
	InvoiceNo string   `json:"invoiceNo,omitempty"`
	Date      string   `json:"date,omitempty"`
	Items     []string `json:"items" validate:"required,min=1,dive,required"`
}

// ProductRef identifies one item of the universe. In JSON it is either an
// object {"id": "...", "name": "..."} or a bare id string.
type ProductRef struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name,omitempty"`
}

// UnmarshalJSON accepts both the object and the bare string form.
func (p *ProductRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*p = ProductRef{ID: id}
		return nil
	}

	type plain ProductRef
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.New("item must be a string id or an object with an id")
	}
	*p = ProductRef(obj)
	return nil
}

// AnalyzeRequest is the body of POST /api/v1/analyze.
//
// Thresholds are pointers so that an explicit 0 is rejected while an omitted
// value selects the server default.
type AnalyzeRequest struct {
	Transactions      []TransactionInput `json:"transactions" validate:"required,min=1,dive"`
	Items             []ProductRef       `json:"items,omitempty" validate:"omitempty,dive"`
	ProductMap        map[string]string  `json:"productMap,omitempty"`
	MinSupport        *float64           `json:"minSupport,omitempty" validate:"omitnil,gt=0,lte=1"`
	MinConfidence     *float64           `json:"minConfidence,omitempty" validate:"omitnil,gt=0,lte=1"`
	Algorithm         string             `json:"algorithm,omitempty" validate:"omitempty,basketalgorithm"`
	CompareAlgorithms bool               `json:"compareAlgorithms,omitempty"`
}

// DailyAnalyzeRequest is the body of POST /api/v1/analyze/daily.
type DailyAnalyzeRequest struct {
	AnalyzeRequest
	TargetDate string `json:"targetDate" validate:"required,basketdate"`
}

// Names returns the display names known to the request: productMap entries,
// overridden by names given inline in items.
func (r *AnalyzeRequest) Names() map[string]string {
	names := make(map[string]string, len(r.ProductMap)+len(r.Items))
	for id, name := range r.ProductMap {
		names[id] = name
	}
	for _, item := range r.Items {
		if item.Name != "" {
			names[item.ID] = item.Name
		}
	}
	return names
}

// ToAnalysisRequest converts the body into an engine request.
func (r *AnalyzeRequest) ToAnalysisRequest(requestID string) analysis.Request {
	txs := make([]basket.Transaction, len(r.Transactions))
	for i, t := range r.Transactions {
		txs[i] = basket.Transaction{InvoiceNo: t.InvoiceNo, Date: t.Date, Items: t.Items}
	}

	var items []string
	if len(r.Items) > 0 {
		items = make([]string, len(r.Items))
		for i, item := range r.Items {
			items[i] = item.ID
		}
	}

	req := analysis.Request{
		RequestID:         requestID,
		Transactions:      txs,
		Items:             items,
		ProductMap:        r.Names(),
		Algorithm:         r.Algorithm,
		CompareAlgorithms: r.CompareAlgorithms,
	}
	if r.MinSupport != nil {
		req.MinSupport = *r.MinSupport
	}
	if r.MinConfidence != nil {
		req.MinConfidence = *r.MinConfidence
	}
	return req
}

// ToDailyRequest converts the body into an engine daily request.
func (r *DailyAnalyzeRequest) ToDailyRequest(requestID string) analysis.DailyRequest {
	return analysis.DailyRequest{
		Request:    r.AnalyzeRequest.ToAnalysisRequest(requestID),
		TargetDate: r.TargetDate,
	}
}

// ItemRef is an item in a response. Name falls back to the id.
type ItemRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemsetDTO is a frequent itemset in a response.
type ItemsetDTO struct {
	Items   []ItemRef `json:"items"`
	Support float64   `json:"support"`
	Count   int       `json:"count"`
}

// RuleDTO is an association rule in a response.
type RuleDTO struct {
	Antecedent []ItemRef `json:"antecedent"`
	Consequent []ItemRef `json:"consequent"`
	Support    float64   `json:"support"`
	Confidence float64   `json:"confidence"`
	Lift       float64   `json:"lift"`
}

// AnalyzeResponse is the data of a successful analysis.
type AnalyzeResponse struct {
	RequestID   string               `json:"requestId"`
	Algorithm   string               `json:"algorithm"`
	Empty       bool                 `json:"empty"`
	Message     string               `json:"message,omitempty"`
	Itemsets    []ItemsetDTO         `json:"itemsets"`
	Rules       []RuleDTO            `json:"rules"`
	Params      analysis.Params      `json:"params"`
	ProcessLogs analysis.ProcessLogs `json:"processLogs"`
	Comparison  *analysis.Comparison `json:"comparison,omitempty"`
	LatencyMS   int64                `json:"latencyMs"`
}

// DailyResponse is the data of a successful daily analysis.
type DailyResponse struct {
	// Date is the analyzed day, same as PreviousDate.
	Date             string          `json:"date"`
	TargetDate       string          `json:"targetDate"`
	PreviousDate     string          `json:"previousDate"`
	TransactionCount int             `json:"transactionCount"`
	Result           AnalyzeResponse `json:"result"`
}

// AlgorithmInfo describes one registered miner.
type AlgorithmInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}

// HealthResponse is the data of the health endpoints.
type HealthResponse struct {
	Status     string          `json:"status"`
	Version    string          `json:"version"`
	Uptime     float64         `json:"uptime_seconds"`
	Algorithms []string        `json:"algorithms,omitempty"`
	Stats      *analysis.Stats `json:"stats,omitempty"`

	// Cache is keyed by endpoint and omitted when caching is disabled.
	Cache map[string]CacheStats `json:"cache,omitempty"`
}

// CacheStats reports the counters of one response cache.
type CacheStats struct {
	cache.Stats
	HitRate float64 `json:"hit_rate"`
}

// NewCacheStats adds the hit rate to a cache snapshot.
func NewCacheStats(s cache.Stats) CacheStats {
	return CacheStats{Stats: s, HitRate: s.HitRate()}
}

// NewAnalyzeResponse builds the response data for a result, resolving
// display names from names.
func NewAnalyzeResponse(res *analysis.Result, names map[string]string) AnalyzeResponse {
	resolve := func(ids []string) []ItemRef {
		refs := make([]ItemRef, len(ids))
		for i, id := range ids {
			name, ok := names[id]
			if !ok || name == "" {
				name = id
			}
			refs[i] = ItemRef{ID: id, Name: name}
		}
		return refs
	}

	itemsets := make([]ItemsetDTO, len(res.Itemsets))
	for i, s := range res.Itemsets {
		itemsets[i] = ItemsetDTO{Items: resolve(s.Items), Support: s.Support, Count: s.Count}
	}
	rules := make([]RuleDTO, len(res.Rules))
	for i, r := range res.Rules {
		rules[i] = RuleDTO{
			Antecedent: resolve(r.Antecedent),
			Consequent: resolve(r.Consequent),
			Support:    r.Support,
			Confidence: r.Confidence,
			Lift:       r.Lift,
		}
	}

	return AnalyzeResponse{
		RequestID:   res.RequestID,
		Algorithm:   res.Algorithm.String(),
		Empty:       res.Empty,
		Message:     res.Message,
		Itemsets:    itemsets,
		Rules:       rules,
		Params:      res.Params,
		ProcessLogs: res.ProcessLogs,
		Comparison:  res.Comparison,
		LatencyMS:   res.LatencyMS,
	}
}

// NewDailyResponse builds the response data for a daily result.
func NewDailyResponse(res *analysis.DailyResult, names map[string]string) DailyResponse {
	return DailyResponse{
		Date:             res.PreviousDate,
		TargetDate:       res.TargetDate,
		PreviousDate:     res.PreviousDate,
		TransactionCount: res.TransactionCount,
		Result:           NewAnalyzeResponse(res.Result, names),
	}
}
