// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

/*
Package services provides suture.Service implementations for the server's
long-running components.

  - HTTPServerService: the API server with graceful shutdown (api layer)
  - UptimeService: refreshes the app_uptime_seconds gauge (metrics layer)
  - CacheSweeperService: removes expired response cache entries (metrics layer)

Every service follows the suture v4 contract: Serve blocks until its context
is canceled, returns ctx.Err() after a clean stop, and returns any other
error to request a restart. String names the service in supervisor events.
*/
package services
