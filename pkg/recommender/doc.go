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

// Package recommender turns events into recommended actions and serves
// them over HTTP.
//
// # Types
//
// An Event carries an id plus free-form event and user metadata. An
// ActionResponse names the channel to act on and its metadata. The
// Recommender interface maps one to the other:
//
//	type Recommender interface {
//	    Recommend(ctx context.Context, event *Event) (*ActionResponse, error)
//	}
//
// DefaultRecommender ignores the event and answers with the configured
// channel and message (by default "web" and "hello client"). Embed
// UnimplementedRecommender in new strategies until Recommend is written;
// it returns ErrNotImplemented.
//
// # HTTP
//
// Handler.HandleRecommendAction serves POST /recommend-action:
//
//	rec := recommender.NewDefaultRecommender(cfg)
//	h := recommender.NewHandler(rec,
//	    recommender.WithEnv(s.Env),
//	    recommender.WithAuthorizer(auth.NewGate(s.APIKeyHash.Value())),
//	)
//
// Requests are processed in this order:
//
//  1. Anything but POST: 405.
//  2. Body over 1 MiB or not valid JSON: 422.
//  3. API key check: 401, 500 or 403.
//  4. Body empty or null (missing), or not an object: 422.
//  5. Field validation (id required, non-empty string; metadata objects): 422
//     listing every violation.
//  6. Recommendation: 200 with the ActionResponse.
//
// Validation failures use FastAPI-style detail entries:
//
//	{"detail": [{"loc": ["body", "id"], "msg": "Field required", "type": "missing"}], ...}
//
// # Metrics
//
//   - tars_recommendations_total{channel}
//   - tars_recommendation_duration_seconds
package recommender
