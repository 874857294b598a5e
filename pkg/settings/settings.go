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

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tars-platform/recommender/pkg/defaults"
)

// Environment variables read by Load.
const (
	EnvName       = "ENV"
	EnvAPIKeyHash = "API_KEY_HASH"
	EnvFile       = "TARS_ENV_FILE"
)

// Settings holds process-wide values resolved once at startup.
type Settings struct {
	// Env is the deployment environment tag attached to request logs.
	Env string

	// APIKeyHash is the SHA-256 hex digest of the accepted API key.
	// An empty value leaves every authenticated request failing with 500.
	APIKeyHash Secret
}

// Option is a functional option for configuring Settings.
type Option func(*Settings)

// WithEnv overrides the environment tag.
func WithEnv(env string) Option {
	return func(s *Settings) {
		s.Env = env
	}
}

// WithAPIKeyHash overrides the expected API key hash.
func WithAPIKeyHash(hash string) Option {
	return func(s *Settings) {
		s.APIKeyHash = Secret(hash)
	}
}

// New returns Settings populated with defaults and the provided options.
// It does not consult the environment.
func New(opts ...Option) *Settings {
	s := &Settings{
		Env: defaults.Env,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load resolves Settings from the process environment after merging the
// dotenv file named by TARS_ENV_FILE (default .env). Variables already set in
// the environment take precedence over the file. A missing dotenv file is not
// an error; a malformed one is.
func Load() (*Settings, error) {
	envFile := os.Getenv(EnvFile)
	if envFile == "" {
		envFile = defaults.EnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
		slog.Debug("env file not found, using process environment only", "path", envFile)
	}

	return FromEnv(), nil
}

// FromEnv resolves Settings from the current process environment only.
func FromEnv() *Settings {
	s := New()

	if v, ok := os.LookupEnv(EnvName); ok && strings.TrimSpace(v) != "" {
		s.Env = strings.TrimSpace(v)
	}

	s.APIKeyHash = Secret(strings.TrimSpace(os.Getenv(EnvAPIKeyHash)))

	return s
}
