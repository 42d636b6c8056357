// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

/*
Package supervisor provides process supervision for the Basketlytics server
using suture v4.

# Overview

Long-running services are organized into two layers for failure isolation:

	RootSupervisor ("basketlytics")
	├── MetricsSupervisor ("metrics-layer")
	│   └── UptimeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with backoff once FailureThreshold failures
accumulate (decaying at FailureDecay per second). Cancelling the context
passed to Serve stops every service, each within ShutdownTimeout.

# Logging

Supervisor events are emitted through sutureslog to a *slog.Logger. The
server passes logging.NewSlogLogger(), so events land in the same zerolog
stream as the rest of the application.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), cfg.ToTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMetricsService(services.NewUptimeService(start, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Services

See the services subpackage for the suture.Service implementations.
*/
package supervisor
