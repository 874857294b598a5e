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

package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"

	cnserrors "github.com/tars-platform/recommender/pkg/errors"
)

// HeaderName is the name of the header carrying the API key.
const HeaderName = "api-key"

// Decision messages returned to the caller.
const (
	MsgMissingKey    = "Missing API key"
	MsgNotConfigured = "API key not configured"
	MsgInvalidKey    = "Invalid API key"
)

// HashKey returns the lowercase SHA-256 hex digest of key.
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Gate checks the API key of each request against a precomputed hash.
// It holds no per-request state and is safe for concurrent use.
type Gate struct {
	expectedHash string
}

// NewGate returns a Gate accepting keys whose digest equals expectedHash.
// An empty hash is accepted here and rejects every request at check time.
func NewGate(expectedHash string) *Gate {
	return &Gate{expectedHash: strings.ToLower(strings.TrimSpace(expectedHash))}
}

// Authorize checks the API key header of r.
func (g *Gate) Authorize(r *http.Request) error {
	key, ok := lookupKey(r.Header)
	return g.Check(key, ok)
}

// Check applies the gate to a key value. present reports whether the header
// was sent at all; an empty value sent explicitly still counts as present.
// Returned errors are *errors.StructuredError with codes UNAUTHORIZED,
// MISCONFIGURED or FORBIDDEN.
func (g *Gate) Check(key string, present bool) error {
	if !present {
		authDecisions.WithLabelValues(outcomeMissingKey).Inc()
		return cnserrors.New(cnserrors.ErrCodeUnauthorized, MsgMissingKey)
	}

	if g == nil || g.expectedHash == "" {
		slog.Warn("API key hash not configured")
		authDecisions.WithLabelValues(outcomeNotConfigured).Inc()
		return cnserrors.New(cnserrors.ErrCodeMisconfigured, MsgNotConfigured)
	}

	got := HashKey(key)
	if subtle.ConstantTimeCompare([]byte(got), []byte(g.expectedHash)) != 1 {
		authDecisions.WithLabelValues(outcomeInvalidKey).Inc()
		return cnserrors.New(cnserrors.ErrCodeForbidden, MsgInvalidKey)
	}

	authDecisions.WithLabelValues(outcomeAllowed).Inc()
	return nil
}

// lookupKey finds the api-key header case-insensitively. A header spelled
// with an underscore is a different header and does not match.
func lookupKey(h http.Header) (string, bool) {
	if v, ok := h[http.CanonicalHeaderKey(HeaderName)]; ok && len(v) > 0 {
		return v[0], true
	}
	for name, values := range h {
		if strings.EqualFold(name, HeaderName) && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}
