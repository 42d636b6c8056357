// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

// Package logging provides centralized zerolog-based structured logging for Basketlytics.
//
// JSON output is used in production and console output for development.
// A global logger is configured once at startup and shared by the HTTP layer,
// the analysis engine, and the supervisor tree.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Int("transactions", n).Msg("Large analysis request")
//
// # Configuration
//
// Environment variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Context
//
// The request ID middleware stores the request ID in the context with
// ContextWithRequestID. Ctx and CtxWith attach it, along with any correlation
// ID, to every log line written for that request.
//
// # Suture Integration
//
// The supervisor tree requires a *slog.Logger. NewSlogLogger returns one that
// writes through the global zerolog logger:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// # Thread Safety
//
// All package-level functions are safe for concurrent use. Init and SetLogger
// may be called while other goroutines are logging.
package logging
