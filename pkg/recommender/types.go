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

package recommender

import (
	"context"

	cnserrors "github.com/tars-platform/recommender/pkg/errors"
)

// Event is an occurrence submitted for a recommendation. Metadata maps are
// never nil once the event has been validated.
type Event struct {
	ID            string         `json:"id" yaml:"id"`
	EventMetadata map[string]any `json:"event_metadata" yaml:"event_metadata"`
	UserMetadata  map[string]any `json:"user_metadata" yaml:"user_metadata"`
}

// ActionResponse is the recommended follow-up action.
type ActionResponse struct {
	ActionChannel  string         `json:"action_channel" yaml:"action_channel"`
	ActionMetadata map[string]any `json:"action_metadata" yaml:"action_metadata"`
}

// Recommender maps an event to a recommended action.
type Recommender interface {
	Recommend(ctx context.Context, event *Event) (*ActionResponse, error)
}

// ErrNotImplemented is returned by recommenders that do not override
// Recommend.
var ErrNotImplemented = cnserrors.New(cnserrors.ErrCodeNotImplemented, "recommend is not implemented")

// UnimplementedRecommender can be embedded by recommenders under
// construction. Its Recommend always returns ErrNotImplemented.
type UnimplementedRecommender struct{}

// Recommend returns ErrNotImplemented.
func (UnimplementedRecommender) Recommend(context.Context, *Event) (*ActionResponse, error) {
	return nil, ErrNotImplemented
}
