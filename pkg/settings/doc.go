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

// Package settings resolves the process-wide settings of the recommender
// service from the environment and an optional dotenv file.
//
// Settings are read once at startup and passed into constructors; nothing in
// the service reads them from a global afterwards.
//
//	s, err := settings.Load()
//	if err != nil {
//	    return err
//	}
//	gate := auth.NewGate(s.APIKeyHash.Value())
//
// Recognized variables:
//   - ENV: deployment environment tag (default: local)
//   - API_KEY_HASH: SHA-256 hex digest of the accepted API key
//   - TARS_ENV_FILE: dotenv file to merge (default: .env)
package settings
