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

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/tars-platform/recommender/pkg/defaults"
	cnserrors "github.com/tars-platform/recommender/pkg/errors"
	"github.com/tars-platform/recommender/pkg/k8s/client"
)

// EnvConfigSource names the environment variable holding the configuration
// source, either a file path or cm://namespace/name.
const EnvConfigSource = "TARS_CONFIG"

// ConfigMapKeys are the data keys tried, in order, on a ConfigMap source.
var ConfigMapKeys = []string{"config.yaml", "config.yml", "config.json"}

// Option configures Load.
type Option func(*loader)

type loader struct {
	kubeClient func() (client.Interface, error)
}

// WithKubeClient sets the client used for ConfigMap sources. Without it the
// process-wide client from client.GetKubeClient is used.
func WithKubeClient(c client.Interface) Option {
	return func(l *loader) {
		l.kubeClient = func() (client.Interface, error) { return c, nil }
	}
}

// SourceFromEnv returns the configuration source named by TARS_CONFIG,
// or the default path.
func SourceFromEnv() string {
	if v := os.Getenv(EnvConfigSource); v != "" {
		return v
	}
	return defaults.ConfigPath
}

// Load resolves the configuration from source. It never fails: a missing
// file yields defaults, and any read or parse problem is logged as a
// warning before falling back to defaults.
func Load(ctx context.Context, source string, opts ...Option) *Config {
	l := &loader{kubeClient: client.GetKubeClient}
	for _, opt := range opts {
		opt(l)
	}

	cfg, err := l.load(ctx, source)
	if err != nil {
		if cnserrors.CodeOf(err) == cnserrors.ErrCodeNotFound {
			slog.Warn("configuration not found, using defaults", "source", source)
		} else {
			slog.Warn("failed to load configuration, using defaults", "source", source, "error", err)
		}
		return Default()
	}

	slog.Debug("configuration loaded",
		"source", source,
		"channel", cfg.Channel(),
		"message", cfg.Message())

	return cfg
}

func (l *loader) load(ctx context.Context, source string) (*Config, error) {
	if source == "" {
		return nil, cnserrors.New(cnserrors.ErrCodeNotFound, "no configuration source")
	}

	var data []byte
	var err error
	if client.IsConfigMapURI(source) {
		data, err = l.readConfigMap(ctx, source)
	} else {
		data, err = readFile(source)
	}
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"invalid configuration document", err, map[string]any{"source": source})
	}
	return cfg, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cnserrors.Wrap(cnserrors.ErrCodeNotFound, "configuration file not found", err)
		}
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal,
			fmt.Sprintf("failed to read configuration file %s", path), err)
	}
	return data, nil
}

func (l *loader) readConfigMap(ctx context.Context, uri string) ([]byte, error) {
	namespace, name, err := client.ParseConfigMapURI(uri)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid configuration source", err)
	}

	c, err := l.kubeClient()
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeUnavailable, "kubernetes client unavailable", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	key, data, err := client.ReadConfigMapKey(ctx, c, namespace, name, ConfigMapKeys...)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeNotFound,
			"configuration ConfigMap unavailable", err,
			map[string]any{"namespace": namespace, "name": name})
	}

	slog.Debug("read configuration from ConfigMap", "namespace", namespace, "name", name, "key", key)
	return []byte(data), nil
}
