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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/tars-platform/recommender/pkg/k8s/client"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "default.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	ctx := context.Background()

	t.Run("overrides", func(t *testing.T) {
		cfg := Load(ctx, writeConfig(t, "action:\n  channel: sms\n  message: hey\n"))
		assert.Equal(t, "sms", cfg.Channel())
		assert.Equal(t, "hey", cfg.Message())
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg := Load(ctx, filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Equal(t, Default(), cfg)
	})

	t.Run("malformed file falls back to defaults", func(t *testing.T) {
		cfg := Load(ctx, writeConfig(t, "action: [unclosed\n"))
		assert.Equal(t, Default(), cfg)
	})

	t.Run("directory falls back to defaults", func(t *testing.T) {
		cfg := Load(ctx, t.TempDir())
		assert.Equal(t, Default(), cfg)
	})

	t.Run("empty source falls back to defaults", func(t *testing.T) {
		assert.Equal(t, Default(), Load(ctx, ""))
	})
}

func TestLoad_ConfigMap(t *testing.T) {
	ctx := context.Background()
	cs := fake.NewSimpleClientset(
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "recommender", Namespace: "tars"},
			Data:       map[string]string{"config.yaml": "action:\n  channel: slack\n"},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "json-only", Namespace: "tars"},
			Data:       map[string]string{"config.json": `{"action":{"message":"from json"}}`},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "no-keys", Namespace: "tars"},
			Data:       map[string]string{"other": "x"},
		},
	)

	tests := []struct {
		name        string
		source      string
		wantChannel string
		wantMessage string
	}{
		{"yaml key", "cm://tars/recommender", "slack", "hello client"},
		{"json fallback key", "cm://tars/json-only", "web", "from json"},
		{"no matching key", "cm://tars/no-keys", "web", "hello client"},
		{"missing ConfigMap", "cm://tars/absent", "web", "hello client"},
		{"malformed URI", "cm://tars", "web", "hello client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load(ctx, tt.source, WithKubeClient(cs))
			assert.Equal(t, tt.wantChannel, cfg.Channel())
			assert.Equal(t, tt.wantMessage, cfg.Message())
		})
	}
}

func TestLoad_ConfigMapWithoutCluster(t *testing.T) {
	l := func(o *loader) {
		o.kubeClient = func() (client.Interface, error) { return nil, errors.New("no cluster") }
	}
	cfg := Load(context.Background(), "cm://tars/recommender", l)
	assert.Equal(t, Default(), cfg)
}

func TestSourceFromEnv(t *testing.T) {
	t.Setenv(EnvConfigSource, "")
	assert.Equal(t, "config/default.yaml", SourceFromEnv())

	t.Setenv(EnvConfigSource, "cm://tars/recommender")
	assert.Equal(t, "cm://tars/recommender", SourceFromEnv())
}
