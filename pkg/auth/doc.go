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

// Package auth implements the API key gate in front of the recommender.
//
// Clients send the key in the api-key header. The header name is matched
// case-insensitively; api_key is a different header. The gate hashes the
// value with SHA-256 and compares the lowercase hex digest against the
// API_KEY_HASH setting in constant time:
//
//	gate := auth.NewGate(settings.APIKeyHash.Value())
//	if err := gate.Authorize(r); err != nil {
//	    server.WriteErrorFromErr(w, r, err, "authorization failed", nil)
//	    return
//	}
//
// Outcomes, in order of evaluation:
//
//   - header absent: UNAUTHORIZED ("Missing API key")
//   - hash not configured: MISCONFIGURED ("API key not configured"), logged as a warning
//   - digest mismatch: FORBIDDEN ("Invalid API key")
//
// Use HashKey (or "tars hash-key") to produce the value for API_KEY_HASH.
package auth
