// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP server that hosts the recommender API.
//
// A Server owns a ServeMux with three system routes that bypass rate
// limiting:
//
//   - GET /health: liveness, 200 while the process answers
//   - GET /ready: readiness, 503 until the listener is bound and after shutdown starts
//   - GET /metrics: Prometheus exposition
//
// Handlers registered with WithHandler are wrapped in the API middleware
// chain, outermost first: metrics, API version negotiation (X-API-Version),
// request ID (X-Request-Id), panic recovery, token-bucket rate limiting
// (429 with Retry-After) and debug request logging. When no "/" handler is
// given, a root handler lists the registered routes.
//
// Usage:
//
//	s := server.New(
//	    server.WithName("tarsd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/recommend-action": handler.HandleRecommendAction,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT, SIGTERM or cancellation of ctx, then drains
// in-flight requests for up to Config.ShutdownTimeout.
//
// # Errors
//
// Every error response has the same body:
//
//	{"detail": "Invalid API key", "code": "FORBIDDEN", "requestId": "...",
//	 "timestamp": "...", "retryable": false}
//
// detail is a string, or a list of field errors for 422 responses written
// with WriteValidationError. WriteErrorFromErr derives status, code and
// retryability from a *errors.StructuredError.
//
// # Configuration
//
// NewConfig reads PORT (default 8080) and SHUTDOWN_TIMEOUT_SECONDS
// (default 30).
package server
