// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/basketlytics/internal/basket"
	"github.com/tomtom215/basketlytics/internal/basket/rules"
	"github.com/tomtom215/basketlytics/internal/metrics"
)

// Analysis kinds used for metrics labels.
const (
	kindAnalyze = "analyze"
	kindDaily   = "daily"
)

// supportTolerance is the largest support difference treated as equal when
// comparing miners.
const supportTolerance = 1e-9

// Engine validates requests, runs the selected miner(s) and derives rules.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	miners  map[basket.Algorithm]basket.Miner
	minerMu sync.RWMutex

	rules *rules.Generator
	slots *semaphore.Weighted

	requestCount atomic.Int64
	emptyCount   atomic.Int64
	invalidCount atomic.Int64
	errorCount   atomic.Int64
	inFlight     atomic.Int64
	completed    atomic.Int64
}

// NewEngine creates a new analysis engine. Miners are added with RegisterMiner.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "analysis").Logger(),
		miners: make(map[basket.Algorithm]basket.Miner),
		rules:  rules.NewGenerator(cfg.MaxRuleItems),
		slots:  semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
	}, nil
}

// RegisterMiner adds a miner, replacing any miner for the same algorithm.
func (e *Engine) RegisterMiner(m basket.Miner) {
	e.minerMu.Lock()
	defer e.minerMu.Unlock()

	e.miners[m.Algorithm()] = m
	e.logger.Info().
		Str("algorithm", m.Name()).
		Msg("registered miner")
}

// Miners returns the registered miners in basket.Algorithms order.
func (e *Engine) Miners() []basket.Miner {
	e.minerMu.RLock()
	defer e.minerMu.RUnlock()

	out := make([]basket.Miner, 0, len(e.miners))
	for _, alg := range basket.Algorithms() {
		if m, ok := e.miners[alg]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Stats returns engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests:  e.requestCount.Load(),
		Empty:     e.emptyCount.Load(),
		Invalid:   e.invalidCount.Load(),
		Errors:    e.errorCount.Load(),
		InFlight:  e.inFlight.Load(),
		Completed: e.completed.Load(),
	}
}

// Ready reports whether every algorithm has a miner.
func (e *Engine) Ready() bool {
	return len(e.Miners()) == len(basket.Algorithms())
}

// Analyze mines frequent itemsets and derives association rules.
//
// Input problems are returned as *basket.InputError before mining starts. An
// analysis that finds no itemsets returns a Result with Empty set.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Analyze(ctx context.Context, req Request) (*Result, error) {
	return e.run(ctx, kindAnalyze, req, EmptyResultMessage)
}

// prepared is a validated request ready for mining.
type prepared struct {
	req           Request
	algorithm     basket.Algorithm
	minSupport    float64
	minConfidence float64
	store         *basket.TransactionStore
}

// run executes one analysis of the given kind.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) run(ctx context.Context, kind string, req Request, emptyMessage string) (*Result, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("kind", kind).
		Logger()

	p, err := e.prepare(req)
	if err != nil {
		e.invalidCount.Add(1)
		metrics.RecordAnalysis(kind, metrics.OutcomeInvalid, time.Since(start), 0)
		logger.Debug().Err(err).Msg("rejected analysis request")
		return nil, err
	}

	if err := e.slots.Acquire(ctx, 1); err != nil {
		e.errorCount.Add(1)
		metrics.RecordAnalysis(kind, outcomeFor(err), time.Since(start), p.store.Len())
		return nil, fmt.Errorf("wait for analysis slot: %w", err)
	}
	e.inFlight.Add(1)
	metrics.TrackAnalysis(true)
	defer func() {
		e.slots.Release(1)
		e.inFlight.Add(-1)
		metrics.TrackAnalysis(false)
	}()

	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	logger.Debug().
		Str("algorithm", p.algorithm.String()).
		Int("transactions", p.store.Len()).
		Int("items", p.store.ItemCount()).
		Int("dropped_items", p.store.Dropped()).
		Float64("min_support", p.minSupport).
		Float64("min_confidence", p.minConfidence).
		Bool("compare", req.CompareAlgorithms).
		Msg("starting analysis")

	result, err := e.execute(ctx, p)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordAnalysis(kind, outcomeFor(err), time.Since(start), p.store.Len())
		logger.Warn().Err(err).Msg("analysis failed")
		return nil, err
	}

	if len(result.Itemsets) == 0 {
		result.Empty = true
		result.Message = emptyMessage
		e.emptyCount.Add(1)
	}

	result.RequestID = req.RequestID
	result.Timestamp = time.Now()
	result.LatencyMS = time.Since(start).Milliseconds()
	e.completed.Add(1)

	outcome := metrics.OutcomeSuccess
	if result.Empty {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordAnalysis(kind, outcome, time.Since(start), p.store.Len())

	logger.Info().
		Str("algorithm", p.algorithm.String()).
		Int("itemsets", len(result.Itemsets)).
		Int("rules", len(result.Rules)).
		Bool("empty", result.Empty).
		Int64("latency_ms", result.LatencyMS).
		Msg("analysis complete")

	return result, nil
}

// prepare validates the request, applies defaults and builds the store.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepare(req Request) (*prepared, error) {
	if len(req.Transactions) == 0 {
		return nil, &basket.InputError{Field: "transactions", Reason: "at least one transaction is required"}
	}
	if len(req.Transactions) > e.config.MaxTransactions {
		return nil, &basket.InputError{
			Field:  "transactions",
			Reason: fmt.Sprintf("at most %d transactions are allowed, got %d", e.config.MaxTransactions, len(req.Transactions)),
		}
	}
	for i := range req.Transactions {
		if len(req.Transactions[i].Items) == 0 {
			return nil, &basket.InputError{
				Field:  fmt.Sprintf("transactions[%d].items", i),
				Reason: "must contain at least one item",
			}
		}
	}

	minSupport, err := resolveThreshold("minSupport", req.MinSupport, e.config.DefaultMinSupport)
	if err != nil {
		return nil, err
	}
	minConfidence, err := resolveThreshold("minConfidence", req.MinConfidence, e.config.DefaultMinConfidence)
	if err != nil {
		return nil, err
	}

	algorithm := e.config.DefaultAlgorithm
	if req.Algorithm != "" {
		algorithm, err = basket.ParseAlgorithm(req.Algorithm)
		if err != nil {
			return nil, err
		}
	}

	universe := req.Items
	if len(universe) == 0 {
		universe = productIDs(req.ProductMap)
	}
	if len(universe) == 0 {
		return nil, &basket.InputError{Field: "items", Reason: "items or productMap is required"}
	}
	if len(universe) > e.config.MaxItems {
		return nil, &basket.InputError{
			Field:  "items",
			Reason: fmt.Sprintf("at most %d distinct items are allowed, got %d", e.config.MaxItems, len(universe)),
		}
	}

	return &prepared{
		req:           req,
		algorithm:     algorithm,
		minSupport:    minSupport,
		minConfidence: minConfidence,
		store:         basket.NewStoreFromTransactions(req.Transactions, universe),
	}, nil
}

// resolveThreshold treats zero as unset and validates anything else.
func resolveThreshold(field string, v, fallback float64) (float64, error) {
	if v == 0 {
		return fallback, nil
	}
	if err := basket.ValidateThreshold(field, v); err != nil {
		return 0, err
	}
	return v, nil
}

// productIDs returns the sorted keys of a product map.
func productIDs(productMap map[string]string) []string {
	ids := make([]string, 0, len(productMap))
	for id := range productMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// minerRun is the output of one miner plus its rules.
type minerRun struct {
	algorithm basket.Algorithm
	itemsets  []basket.Itemset
	rules     []basket.Rule
	elapsed   time.Duration
	trace     *basket.Trace
}

// execute runs the selected miner, or every miner in comparison mode.
func (e *Engine) execute(ctx context.Context, p *prepared) (*Result, error) {
	result := &Result{
		Algorithm: p.algorithm,
		Params: Params{
			Algorithm:        p.algorithm.String(),
			MinSupport:       p.minSupport,
			MinConfidence:    p.minConfidence,
			MinSupportCount:  basket.MinSupportCount(p.minSupport, p.store.Len()),
			TransactionCount: p.store.Len(),
			ProductCount:     p.store.ItemCount(),
		},
		ProcessLogs: ProcessLogs{Eclat: []string{}, FPGrowth: []string{}},
	}

	if !p.req.CompareAlgorithms {
		miner, err := e.miner(p.algorithm)
		if err != nil {
			return nil, err
		}
		run, err := e.runMiner(ctx, miner, p)
		if err != nil {
			return nil, err
		}
		result.Itemsets = run.itemsets
		result.Rules = run.rules
		result.ProcessLogs.set(run.algorithm, run.trace.Lines())
		return result, nil
	}

	runs, err := e.runAll(ctx, p)
	if err != nil {
		return nil, err
	}

	comparison := &Comparison{}
	for _, run := range runs {
		result.ProcessLogs.set(run.algorithm, run.trace.Lines())
		stats := EngineStats{
			Algorithm:       run.algorithm.String(),
			ItemsetCount:    len(run.itemsets),
			RuleCount:       len(run.rules),
			ExecutionTimeMS: float64(run.elapsed.Microseconds()) / 1000,
			ItemsetsBySize:  basket.CountBySize(run.itemsets),
		}
		switch run.algorithm {
		case basket.AlgorithmEclat:
			comparison.Eclat = stats
		case basket.AlgorithmFPGrowth:
			comparison.FPGrowth = stats
		}
		if run.algorithm == p.algorithm {
			result.Itemsets = run.itemsets
			result.Rules = run.rules
		}
	}
	comparison.Equivalent = Equivalent(runs[0].itemsets, runs[1].itemsets)
	result.Comparison = comparison

	return result, nil
}

// runAll runs every algorithm on the same store, concurrently when configured.
func (e *Engine) runAll(ctx context.Context, p *prepared) ([]*minerRun, error) {
	algorithms := basket.Algorithms()
	miners := make([]basket.Miner, len(algorithms))
	for i, alg := range algorithms {
		m, err := e.miner(alg)
		if err != nil {
			return nil, err
		}
		miners[i] = m
	}

	runs := make([]*minerRun, len(miners))

	if !e.config.ParallelCompare {
		for i, m := range miners {
			run, err := e.runMiner(ctx, m, p)
			if err != nil {
				return nil, err
			}
			runs[i] = run
		}
		return runs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range miners {
		g.Go(func() error {
			run, err := e.runMiner(gctx, m, p)
			if err != nil {
				return err
			}
			runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// runMiner mines with m and derives rules from its itemsets.
func (e *Engine) runMiner(ctx context.Context, m basket.Miner, p *prepared) (*minerRun, error) {
	trace := basket.NewTrace()

	start := time.Now()
	itemsets, err := m.Mine(ctx, p.store, p.minSupport, trace)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%s mining: %w", m.Name(), err)
	}
	metrics.RecordMining(m.Name(), elapsed, len(itemsets))

	if dropped := p.store.Dropped(); dropped > 0 {
		trace.Addf("Ignored %d item occurrences outside the item universe", dropped)
	}

	found := e.rules.Generate(itemsets, p.store.Len(), p.minConfidence, trace)
	metrics.RecordRules(m.Name(), len(found))

	return &minerRun{
		algorithm: m.Algorithm(),
		itemsets:  itemsets,
		rules:     found,
		elapsed:   elapsed,
		trace:     trace,
	}, nil
}

// miner returns the registered miner for alg.
func (e *Engine) miner(alg basket.Algorithm) (basket.Miner, error) {
	e.minerMu.RLock()
	defer e.minerMu.RUnlock()

	m, ok := e.miners[alg]
	if !ok {
		return nil, fmt.Errorf("no miner registered for %s", alg)
	}
	return m, nil
}

// Equivalent reports whether two itemset collections contain the same member
// sets with supports within 1e-9, regardless of order.
func Equivalent(a, b []basket.Itemset) bool {
	if len(a) != len(b) {
		return false
	}
	supports := make(map[string]float64, len(a))
	for _, s := range a {
		supports[s.Key()] = s.Support
	}
	for _, s := range b {
		support, ok := supports[s.Key()]
		if !ok || math.Abs(support-s.Support) > supportTolerance {
			return false
		}
	}
	return true
}

// outcomeFor maps an execution error to a metrics outcome.
func outcomeFor(err error) string {
	switch {
	case basket.IsInvalidInput(err):
		return metrics.OutcomeInvalid
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeTimeout
	default:
		return metrics.OutcomeError
	}
}
