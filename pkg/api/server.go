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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tars-platform/recommender/pkg/auth"
	"github.com/tars-platform/recommender/pkg/banner"
	"github.com/tars-platform/recommender/pkg/config"
	"github.com/tars-platform/recommender/pkg/k8s/client"
	"github.com/tars-platform/recommender/pkg/logging"
	"github.com/tars-platform/recommender/pkg/recommender"
	"github.com/tars-platform/recommender/pkg/server"
	"github.com/tars-platform/recommender/pkg/settings"
)

const (
	name           = "tarsd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/tars-platform/recommender/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Option configures the service assembled by NewServer.
type Option func(*options)

type options struct {
	logLevel     string
	configSource string
	bannerPath   string
	port         int
	settings     *settings.Settings
	configOpts   []config.Option
}

// WithLogLevel sets the log level, overriding LOG_LEVEL.
func WithLogLevel(level string) Option {
	return func(o *options) {
		o.logLevel = level
	}
}

// WithConfigSource sets the configuration file path or cm://namespace/name URI.
func WithConfigSource(source string) Option {
	return func(o *options) {
		if source != "" {
			o.configSource = source
		}
	}
}

// WithBannerPath sets the startup banner path.
func WithBannerPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.bannerPath = path
		}
	}
}

// WithPort overrides the listen port from PORT.
func WithPort(port int) Option {
	return func(o *options) {
		if port > 0 {
			o.port = port
		}
	}
}

// WithSettings supplies settings instead of loading them from the environment.
func WithSettings(s *settings.Settings) Option {
	return func(o *options) {
		o.settings = s
	}
}

// WithKubeClient sets the client used for ConfigMap configuration sources.
func WithKubeClient(c client.Interface) Option {
	return func(o *options) {
		o.configOpts = append(o.configOpts, config.WithKubeClient(c))
	}
}

// NewServer resolves settings, configuration and the banner, then returns
// a server with POST /recommend-action registered. Neither a missing
// configuration nor a missing banner is an error.
func NewServer(ctx context.Context, opts ...Option) (*server.Server, error) {
	o := newOptions(opts)

	st := o.settings
	if st == nil {
		var err error
		if st, err = settings.Load(); err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
	}

	banner.Log(banner.Load(o.bannerPath))

	if !st.APIKeyHash.IsSet() {
		slog.Warn("API_KEY_HASH is not set, every recommendation request will fail")
	}

	cfg := config.Load(ctx, o.configSource, o.configOpts...)
	rec := recommender.NewDefaultRecommender(cfg)

	h := recommender.NewHandler(rec,
		recommender.WithEnv(st.Env),
		recommender.WithAuthorizer(auth.NewGate(st.APIKeyHash.Value())),
	)

	slog.Info("service configured",
		"env", st.Env,
		"config", o.configSource,
		"recommender", rec.String(),
		"apiKeyHash", st.APIKeyHash)

	sc := server.NewConfig()
	sc.Name = name
	sc.Version = version
	if o.port > 0 {
		sc.Port = o.port
	}

	return server.New(
		server.WithConfig(sc),
		server.WithHandler(map[string]http.HandlerFunc{
			recommender.RecommendActionPath: h.HandleRecommendAction,
		}),
	), nil
}

func newOptions(opts []Option) *options {
	o := &options{
		configSource: config.SourceFromEnv(),
		bannerPath:   banner.PathFromEnv(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, assembles the service and handles graceful shutdown.
func Serve(ctx context.Context, opts ...Option) error {
	if level := newOptions(opts).logLevel; level != "" {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	} else {
		logging.SetDefaultStructuredLogger(name, version)
	}
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := NewServer(ctx, opts...)
	if err != nil {
		slog.Error("failed to initialize server", "error", err)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
