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

package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		name      string
		uri       string
		wantNS    string
		wantName  string
		wantError bool
	}{
		{"valid", "cm://tars/recommender-config", "tars", "recommender-config", false},
		{"missing scheme", "tars/recommender-config", "", "", true},
		{"missing name", "cm://tars", "", "", true},
		{"empty namespace", "cm:///recommender-config", "", "", true},
		{"empty name", "cm://tars/", "", "", true},
		{"extra segment", "cm://tars/a/b", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, name, err := ParseConfigMapURI(tt.uri)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNS, ns)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestIsConfigMapURI(t *testing.T) {
	assert.True(t, IsConfigMapURI("cm://ns/name"))
	assert.False(t, IsConfigMapURI("config/default.yaml"))
	assert.False(t, IsConfigMapURI(""))
}

func TestReadConfigMapKey(t *testing.T) {
	cs := fake.NewSimpleClientset(&corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "recommender-config", Namespace: "tars"},
		Data: map[string]string{
			"config.json": `{"action":{"channel":"sms"}}`,
		},
	})
	ctx := context.Background()

	t.Run("first present key wins", func(t *testing.T) {
		key, val, err := ReadConfigMapKey(ctx, cs, "tars", "recommender-config", "config.yaml", "config.json")
		require.NoError(t, err)
		assert.Equal(t, "config.json", key)
		assert.Contains(t, val, "sms")
	})

	t.Run("no matching key", func(t *testing.T) {
		_, _, err := ReadConfigMapKey(ctx, cs, "tars", "recommender-config", "config.yaml")
		assert.Error(t, err)
	})

	t.Run("missing ConfigMap", func(t *testing.T) {
		_, _, err := ReadConfigMapKey(ctx, cs, "tars", "absent", "config.yaml")
		assert.Error(t, err)
	})
}
