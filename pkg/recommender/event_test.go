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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errTypes(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	types := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		types = append(types, fe.Type)
	}
	return types
}

func TestDecodeBody(t *testing.T) {
	t.Run("empty is absent, not an error", func(t *testing.T) {
		v, present, err := DecodeBody([]byte(" \n"))
		require.NoError(t, err)
		assert.False(t, present)
		assert.Nil(t, v)
	})

	t.Run("non-object json decodes", func(t *testing.T) {
		v, present, err := DecodeBody([]byte(`[1]`))
		require.NoError(t, err)
		assert.True(t, present)
		assert.Len(t, v, 1)
	})

	t.Run("malformed json fails", func(t *testing.T) {
		_, _, err := DecodeBody([]byte(`[1`))
		assert.Equal(t, []string{ErrTypeJSONInvalid}, errTypes(t, err))
	})
}

func TestParseBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantType string
	}{
		{"object", `{"id":"evt-1"}`, ""},
		{"object with whitespace", "  {}\n", ""},
		{"empty", "", ErrTypeMissing},
		{"whitespace only", "   ", ErrTypeMissing},
		{"malformed", `{"id":`, ErrTypeJSONInvalid},
		{"trailing data", `{"id":"a"} {"id":"b"}`, ErrTypeJSONInvalid},
		{"array", `[{"id":"a"}]`, ErrTypeObject},
		{"string", `"evt-1"`, ErrTypeObject},
		{"null", `null`, ErrTypeMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ParseBody([]byte(tt.body))
			if tt.wantType == "" {
				require.NoError(t, err)
				assert.NotNil(t, raw)
				return
			}
			assert.Equal(t, []string{tt.wantType}, errTypes(t, err))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, []string{"body"}, ve.Errors[0].Loc)
		})
	}
}

func TestEventFromMap(t *testing.T) {
	t.Run("full event", func(t *testing.T) {
		ev, err := DecodeEvent([]byte(`{"id":"evt-1","event_metadata":{"foo":"bar"},"user_metadata":{"user":"abc"}}`))
		require.NoError(t, err)
		assert.Equal(t, "evt-1", ev.ID)
		assert.Equal(t, map[string]any{"foo": "bar"}, ev.EventMetadata)
		assert.Equal(t, map[string]any{"user": "abc"}, ev.UserMetadata)
	})

	t.Run("metadata defaults to empty maps", func(t *testing.T) {
		ev, err := DecodeEvent([]byte(`{"id":"evt-1"}`))
		require.NoError(t, err)
		assert.NotNil(t, ev.EventMetadata)
		assert.Empty(t, ev.EventMetadata)
		assert.NotNil(t, ev.UserMetadata)
		assert.Empty(t, ev.UserMetadata)
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		ev, err := DecodeEvent([]byte(`{"id":"evt-1","extra":true}`))
		require.NoError(t, err)
		assert.Equal(t, "evt-1", ev.ID)
	})

	tests := []struct {
		name      string
		body      string
		wantTypes []string
	}{
		{"missing id", `{"event_metadata":{},"user_metadata":{}}`, []string{ErrTypeMissing}},
		{"numeric id", `{"id":42}`, []string{ErrTypeString}},
		{"null id", `{"id":null}`, []string{ErrTypeString}},
		{"empty id", `{"id":""}`, []string{ErrTypeTooShort}},
		{"event metadata list", `{"id":"a","event_metadata":[1]}`, []string{ErrTypeDict}},
		{"user metadata null", `{"id":"a","user_metadata":null}`, []string{ErrTypeDict}},
		{"all wrong", `{"event_metadata":"x","user_metadata":1}`, []string{ErrTypeMissing, ErrTypeDict, ErrTypeDict}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent([]byte(tt.body))
			assert.Equal(t, tt.wantTypes, errTypes(t, err))
		})
	}
}

func TestValidationError_Loc(t *testing.T) {
	_, err := DecodeEvent([]byte(`{}`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, FieldError{Loc: []string{"body", "id"}, Msg: "Field required", Type: ErrTypeMissing}, ve.Errors[0])
	assert.Contains(t, err.Error(), "body.id: Field required")
}

func TestLoadEvent(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "event.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("id: evt-9\nuser_metadata:\n  user: abc\n"), 0o600))
	ev, err := LoadEvent(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "evt-9", ev.ID)
	assert.Equal(t, "abc", ev.UserMetadata["user"])
	assert.Empty(t, ev.EventMetadata)

	jsonPath := filepath.Join(dir, "event.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"event_metadata":{}}`), 0o600))
	_, err = LoadEvent(jsonPath)
	assert.Equal(t, []string{ErrTypeMissing}, errTypes(t, err))

	nullPath := filepath.Join(dir, "null.yaml")
	require.NoError(t, os.WriteFile(nullPath, []byte("~\n"), 0o600))
	_, err = LoadEvent(nullPath)
	assert.Equal(t, []string{ErrTypeMissing}, errTypes(t, err))

	_, err = LoadEvent(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
