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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/tars-platform/recommender/pkg/auth"
	"github.com/tars-platform/recommender/pkg/defaults"
	cnserrors "github.com/tars-platform/recommender/pkg/errors"
	"github.com/tars-platform/recommender/pkg/server"
	"github.com/tars-platform/recommender/pkg/serializer"
)

// RecommendActionPath is the route served by HandleRecommendAction.
const RecommendActionPath = "/recommend-action"

// Authorizer decides whether a request may reach the recommender.
// *auth.Gate implements it.
type Authorizer interface {
	Authorize(r *http.Request) error
}

// Handler serves POST /recommend-action.
type Handler struct {
	recommender  Recommender
	authorizer   Authorizer
	env          string
	maxBodyBytes int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithEnv sets the deployment environment tag written to request logs.
func WithEnv(env string) HandlerOption {
	return func(h *Handler) {
		h.env = env
	}
}

// WithAuthorizer sets the API key check. Without it every request that
// carries a key is rejected as misconfigured.
func WithAuthorizer(a Authorizer) HandlerOption {
	return func(h *Handler) {
		if a != nil {
			h.authorizer = a
		}
	}
}

// WithMaxBodyBytes caps the request body size.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler returns a Handler backed by rec.
func NewHandler(rec Recommender, opts ...HandlerOption) *Handler {
	h := &Handler{
		recommender:  rec,
		authorizer:   auth.NewGate(""),
		env:          defaults.Env,
		maxBodyBytes: defaults.MaxEventBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleRecommendAction decodes the event, authorizes the caller and
// returns the recommended action. Only a body that is not valid JSON is
// rejected before the API key is checked. An empty body, a non-object
// body and field violations are reported after authorization.
func (h *Handler) HandleRecommendAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method Not Allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecommendHandlerTimeout)
	defer cancel()

	body, err := h.readBody(w, r)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	value, present, err := DecodeBody(body)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	if err := h.authorizer.Authorize(r); err != nil {
		h.writeErr(w, r, err)
		return
	}

	raw, err := BodyObject(value, present)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	event, err := EventFromMap(raw)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}

	slog.Info("processing recommendation request",
		"event_id", event.ID,
		"env", h.env,
		"requestID", server.RequestIDFromContext(r.Context()))

	resp, err := h.recommender.Recommend(ctx, event)
	if err != nil {
		slog.Error("recommendation failed", "event_id", event.ID, "error", err)
		server.WriteErrorFromErr(w, r, err, "Failed to recommend action", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, bodyError(ErrTypeTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		}
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "Failed to read request body", err)
	}
	return data, nil
}

func (h *Handler) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		server.WriteValidationError(w, r, ve.Errors)
		return
	}
	server.WriteErrorFromErr(w, r, err, "Failed to process request", nil)
}
