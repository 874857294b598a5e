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
	"fmt"
	"log/slog"
	"time"

	"github.com/tars-platform/recommender/pkg/config"
	cnserrors "github.com/tars-platform/recommender/pkg/errors"
)

// MetadataKeyMessage is the action metadata key holding the message.
const MetadataKeyMessage = "message"

// DefaultRecommender returns the configured default action for every event.
// The result depends only on the configuration it was built with.
type DefaultRecommender struct {
	channel string
	message string
}

// NewDefaultRecommender builds a DefaultRecommender from cfg. A nil cfg
// yields the built-in defaults.
func NewDefaultRecommender(cfg *config.Config) *DefaultRecommender {
	return &DefaultRecommender{
		channel: cfg.Channel(),
		message: cfg.Message(),
	}
}

// Recommend ignores the event's content and returns a new ActionResponse
// carrying the configured channel and message.
func (r *DefaultRecommender) Recommend(ctx context.Context, event *Event) (*ActionResponse, error) {
	if event == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "event cannot be nil")
	}

	if err := ctx.Err(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "recommendation canceled", err)
	}

	start := time.Now()
	defer func() {
		recommendDuration.Observe(time.Since(start).Seconds())
	}()

	slog.Debug("recommending default action",
		"event_id", event.ID,
		"channel", r.channel)

	recommendTotal.WithLabelValues(r.channel).Inc()

	return &ActionResponse{
		ActionChannel: r.channel,
		ActionMetadata: map[string]any{
			MetadataKeyMessage: r.message,
		},
	}, nil
}

// String describes the recommender for startup logs.
func (r *DefaultRecommender) String() string {
	return fmt.Sprintf("default(channel=%s)", r.channel)
}
