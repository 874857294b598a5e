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

package serializer

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Channel string         `json:"action_channel" yaml:"action_channel"`
	Meta    map[string]any `json:"action_metadata" yaml:"action_metadata"`
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusCreated, sample{Channel: "web", Meta: map[string]any{"message": "hi"}})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"action_channel":"web","action_metadata":{"message":"hi"}}`, w.Body.String())
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, math.Inf(1))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"event.json": FormatJSON,
		"event.yaml": FormatYAML,
		"EVENT.YML":  FormatYAML,
		"event":      FormatJSON,
		"event.txt":  FormatJSON,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.True(t, Format("table").IsUnknown())
	assert.Equal(t, []string{"json", "yaml"}, SupportedFormats())
}

func TestReader(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader(`{"action_channel":"sms"}`))
		require.NoError(t, err)
		var s sample
		require.NoError(t, r.Deserialize(&s))
		assert.Equal(t, "sms", s.Channel)
		assert.NoError(t, r.Close())
	})

	t.Run("yaml", func(t *testing.T) {
		r, err := NewReader(FormatYAML, strings.NewReader("action_channel: push\n"))
		require.NoError(t, err)
		var s sample
		require.NoError(t, r.Deserialize(&s))
		assert.Equal(t, "push", s.Channel)
	})

	t.Run("invalid input", func(t *testing.T) {
		r, err := NewReader(FormatJSON, strings.NewReader("{"))
		require.NoError(t, err)
		var s sample
		assert.Error(t, r.Deserialize(&s))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewReader(Format("xml"), strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := NewReader(FormatJSON, nil)
		assert.Error(t, err)
	})
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "event.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("action_channel: email\naction_metadata:\n  message: hey\n"), 0o600))

	s, err := FromFile[sample](yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "email", s.Channel)
	assert.Equal(t, "hey", s.Meta["message"])

	_, err = FromFile[sample](filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{nope"), 0o600))
	_, err = FromFile[sample](badPath)
	assert.Error(t, err)
}

func TestWriter(t *testing.T) {
	v := sample{Channel: "web", Meta: map[string]any{"message": "hello client"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatJSON, &buf).Serialize(v))
		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "web", got["action_channel"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(v))
		assert.Contains(t, buf.String(), "action_channel: web")
		assert.Contains(t, buf.String(), "  message: hello client")
	})

	t.Run("unknown format falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(Format("table"), &buf).Serialize(v))
		assert.True(t, json.Valid(buf.Bytes()))
	})
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	w, err := NewFileWriterOrStdout(FormatYAML, path)
	require.NoError(t, err)
	require.NoError(t, w.Serialize(map[string]string{"k": "v"}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "k: v\n", string(data))

	_, err = NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)

	stdout, err := NewFileWriterOrStdout(FormatJSON, "  ")
	require.NoError(t, err)
	assert.NoError(t, stdout.Close())
}
