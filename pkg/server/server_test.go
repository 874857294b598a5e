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

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoutes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/recommend-action": okHandler,
	}
}

func TestNew(t *testing.T) {
	s := New(WithHandler(testRoutes()))
	require.NotNil(t, s)
	assert.NotNil(t, s.config)
	assert.NotNil(t, s.httpServer)
	assert.NotNil(t, s.rateLimiter)
	assert.Contains(t, s.config.Handlers, "/recommend-action")
	assert.Contains(t, s.config.Handlers, "/", "root handler should be added")
	assert.Equal(t, "server", s.config.Name)
}

func TestOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Port = 9090
	cfg.RateLimit = 500

	s := New(WithConfig(cfg), WithName("tarsd"), WithVersion("1.2.3"))
	assert.Equal(t, "tarsd", s.config.Name)
	assert.Equal(t, "1.2.3", s.config.Version)
	assert.Equal(t, 9090, s.config.Port)
	assert.EqualValues(t, 500, s.config.RateLimit)
	assert.Equal(t, ":9090", s.httpServer.Addr)
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	for _, tt := range []struct {
		ready bool
		want  int
	}{
		{false, http.StatusServiceUnavailable},
		{true, http.StatusOK},
		{false, http.StatusServiceUnavailable},
	} {
		s.setReady(tt.ready)
		rec := httptest.NewRecorder()
		s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, tt.want, rec.Code, "ready=%v", tt.ready)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(WithHandler(testRoutes()))

	// one API request so the HTTP series exist
	s.Handler().ServeHTTP(httptest.NewRecorder(),
		httptest.NewRequest(http.MethodPost, "/recommend-action", nil))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tars_http_requests_total")
}

func TestRootHandler(t *testing.T) {
	s := New(WithName("tarsd"), WithHandler(testRoutes()))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RootResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tarsd", resp.Name)
	assert.Equal(t, []string{"/health", "/metrics", "/ready", "/recommend-action"}, resp.Routes)
}

func TestRootHandler_Errors(t *testing.T) {
	s := New()

	rec := httptest.NewRecorder()
	s.config.Handlers["/"](rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestCustomRootHandlerNotOverridden(t *testing.T) {
	called := false
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		},
	}))

	s.config.Handlers["/"](httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestStart_ServesAndShutsDown(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = freePort(t)
	cfg.ShutdownTimeout = 500 * time.Millisecond

	s := New(WithConfig(cfg), WithHandler(testRoutes()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() { errChan <- s.Start(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/ready", cfg.Port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url) //nolint:noctx // test
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown timed out")
	}
	assert.False(t, s.isReady())
}

func TestStart_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	err = New(WithConfig(cfg)).Start(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to listen"))
}
