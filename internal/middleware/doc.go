// Basketlytics - Market Basket Analysis and Association Rule Mining
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketlytics

/*
Package middleware provides HTTP middleware components for the API server.

All middleware has the chi signature func(http.Handler) http.Handler and is
mounted by internal/api alongside chi's own RealIP and Recoverer, go-chi/cors
and go-chi/httprate.

Key Components:

  - RequestID: request tracking that also seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip for clients that accept it
  - SlowRequests: warning log for requests above a latency threshold

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(corsOptions))

	r.Route("/api/v1/analyze", func(r chi.Router) {
	    r.Use(httprate.Limit(...))
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(middleware.SlowRequests(time.Second))
	    r.Use(middleware.Compression)
	    r.Post("/", h.Analyze)
	})

Access the request ID in a handler:

	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("Processing request") // carries request_id
	}

Metric Labels:

PrometheusMetrics labels requests by the matched chi route pattern, for
example "/api/v1/analyze/daily", never by the raw URL path. Requests served
outside a chi router are labelled "unmatched".

Thread Safety:

All middleware is safe for concurrent use. Compression pools gzip writers;
the request ID lives in the immutable request context.
*/
package middleware
