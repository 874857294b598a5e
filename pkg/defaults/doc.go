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

// Package defaults provides centralized configuration constants for the
// recommender service.
//
// This package defines timeout values, the fallback action channel and message,
// and the default locations of startup resources. Centralizing these values
// keeps the HTTP handler, the configuration loader and the CLI in agreement.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/tars-platform/recommender/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.RecommendHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - HTTP handlers: 10s for recommend-action
//   - K8s operations: 10s for the configuration ConfigMap read
//   - Server shutdown: 30s for graceful shutdown
package defaults
