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

// Package api assembles the TARS recommender service and runs it.
//
// Serve is the whole program behind tarsd and "tars serve":
//
//	func main() {
//	    if err := api.Serve(context.Background()); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// At startup it:
//
//   - installs the JSON slog logger (LOG_LEVEL)
//   - loads settings from the environment and .env (ENV, API_KEY_HASH)
//   - logs the banner from TARS_BANNER, if readable
//   - loads the configuration from TARS_CONFIG, falling back to defaults
//   - registers POST /recommend-action behind the API key gate
//
// The server adds GET /, /health, /ready and /metrics.
//
// Example request:
//
//	curl -s -X POST http://localhost:8080/recommend-action \
//	  -H "api-key: $TARS_API_KEY" -H "Content-Type: application/json" \
//	  -d '{"id":"evt-1","event_metadata":{"foo":"bar"},"user_metadata":{"user":"abc"}}'
//
//	{"action_channel":"web","action_metadata":{"message":"hello client"}}
package api
