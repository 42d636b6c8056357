// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSweepInterval is how often expired cache entries are removed.
const DefaultSweepInterval = time.Minute

// CacheSweeper removes expired entries and returns how many were removed.
type CacheSweeper interface {
	SweepCaches() int
}

// CacheSweeperService periodically removes expired response cache entries so
// memory is released without waiting for a lookup of the same key.
type CacheSweeperService struct {
	sweeper  CacheSweeper
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheSweeperService sweeps every interval. A non-positive interval
// selects DefaultSweepInterval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheSweeperService(sweeper CacheSweeper, interval time.Duration, logger zerolog.Logger) *CacheSweeperService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CacheSweeperService{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Serve implements suture.Service.
func (s *CacheSweeperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := s.sweeper.SweepCaches(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("Swept expired cache entries")
			}
		}
	}
}

// String implements fmt.Stringer.
func (s *CacheSweeperService) String() string {
	return "cache-sweeper"
}
