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
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetClientCache() {
	clientOnce = sync.Once{}
	cachedClient = nil
	clientErr = nil
}

func TestBuildKubeClient_InvalidPaths(t *testing.T) {
	tests := []struct {
		name          string
		kubeconfigArg string
		kubeconfigEnv string
	}{
		{name: "explicit invalid path", kubeconfigArg: "/nonexistent/path/to/kubeconfig"},
		{name: "env var with invalid path", kubeconfigEnv: "/nonexistent/env/kubeconfig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KUBECONFIG", tt.kubeconfigEnv)

			_, _, err := BuildKubeClient(tt.kubeconfigArg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to build kube config")
		})
	}
}

func TestBuildKubeClient_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, os.WriteFile(path, []byte("invalid yaml content"), 0o600))

	_, _, err := BuildKubeClient(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build kube config")
}

func TestGetKubeClient_Cached(t *testing.T) {
	resetClientCache()
	t.Cleanup(resetClientCache)

	c1, err1 := GetKubeClient()
	c2, err2 := GetKubeClient()

	assert.Equal(t, err1 != nil, err2 != nil)
	//nolint:errorlint // same cached instance
	assert.True(t, err1 == err2, "error should be cached")
	assert.True(t, c1 == c2, "client should be cached")
}

func TestGetKubeClient_Concurrent(t *testing.T) {
	resetClientCache()
	t.Cleanup(resetClientCache)

	const n = 10
	results := make(chan bool, n)
	for i := 0; i < n; i++ {
		go func() {
			c, _ := GetKubeClient()
			results <- c != nil
		}()
	}

	ok := 0
	for i := 0; i < n; i++ {
		if <-results {
			ok++
		}
	}
	assert.True(t, ok == 0 || ok == n, "inconsistent results: %d of %d succeeded", ok, n)
}
