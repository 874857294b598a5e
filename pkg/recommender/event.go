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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tars-platform/recommender/pkg/serializer"
)

// Validation error types reported in FieldError.Type.
const (
	ErrTypeMissing     = "missing"
	ErrTypeJSONInvalid = "json_invalid"
	ErrTypeObject      = "model_attributes_type"
	ErrTypeTooLarge    = "too_large"
	ErrTypeString      = "string_type"
	ErrTypeTooShort    = "string_too_short"
	ErrTypeDict        = "dict_type"
)

// Event field names.
const (
	FieldID            = "id"
	FieldEventMetadata = "event_metadata"
	FieldUserMetadata  = "user_metadata"
)

// FieldError locates one validation failure. Loc starts with "body"
// followed by the field name when the failure is field-specific.
type FieldError struct {
	Loc  []string `json:"loc" yaml:"loc"`
	Msg  string   `json:"msg" yaml:"msg"`
	Type string   `json:"type" yaml:"type"`
}

// ValidationError collects every failure found in one payload.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return "invalid event: " + strings.Join(parts, "; ")
}

func bodyError(typ, msg string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Loc: []string{"body"}, Msg: msg, Type: typ}}}
}

// DecodeBody decodes data as a single JSON value. An empty body is not an
// error: it yields a nil value with present false, so the caller can
// authorize the request before reporting the missing body.
func DecodeBody(data []byte) (value any, present bool, err error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&value); err != nil {
		return nil, true, bodyError(ErrTypeJSONInvalid, "JSON decode error")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, true, bodyError(ErrTypeJSONInvalid, "JSON decode error")
	}
	return value, true, nil
}

// BodyObject requires a decoded body to be a JSON object. An absent body
// and a JSON null are both reported as missing.
func BodyObject(value any, present bool) (map[string]any, error) {
	if !present || value == nil {
		return nil, bodyError(ErrTypeMissing, "Field required")
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, bodyError(ErrTypeObject, "Input should be a valid dictionary or object to extract fields from")
	}
	return obj, nil
}

// ParseBody checks that data is a single JSON object and returns it
// undecoded beyond the top level. It does not look at the fields.
func ParseBody(data []byte) (map[string]any, error) {
	value, present, err := DecodeBody(data)
	if err != nil {
		return nil, err
	}
	return BodyObject(value, present)
}

// EventFromMap validates the fields of a decoded payload. All violations
// are reported together. Unknown fields are ignored. Omitted metadata
// defaults to an empty map.
func EventFromMap(raw map[string]any) (*Event, error) {
	var errs []FieldError
	ev := &Event{}

	id, ok := raw[FieldID]
	s, isString := id.(string)
	switch {
	case !ok:
		errs = append(errs, fieldError(FieldID, ErrTypeMissing, "Field required"))
	case !isString:
		errs = append(errs, fieldError(FieldID, ErrTypeString, "Input should be a valid string"))
	case s == "":
		errs = append(errs, fieldError(FieldID, ErrTypeTooShort, "String should have at least 1 character"))
	default:
		ev.ID = s
	}

	var fe *FieldError
	if ev.EventMetadata, fe = metadataField(raw, FieldEventMetadata); fe != nil {
		errs = append(errs, *fe)
	}
	if ev.UserMetadata, fe = metadataField(raw, FieldUserMetadata); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return ev, nil
}

func fieldError(field, typ, msg string) FieldError {
	return FieldError{Loc: []string{"body", field}, Msg: msg, Type: typ}
}

func metadataField(raw map[string]any, field string) (map[string]any, *FieldError) {
	v, ok := raw[field]
	if !ok {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		fe := fieldError(field, ErrTypeDict, "Input should be a valid dictionary")
		return nil, &fe
	}
	return m, nil
}

// DecodeEvent parses and validates a JSON event in one step.
func DecodeEvent(data []byte) (*Event, error) {
	raw, err := ParseBody(data)
	if err != nil {
		return nil, err
	}
	return EventFromMap(raw)
}

// LoadEvent reads an event from a JSON or YAML file, choosing the format
// by extension, and validates it.
func LoadEvent(path string) (*Event, error) {
	raw, err := serializer.FromFile[map[string]any](path)
	if err != nil {
		return nil, err
	}
	if *raw == nil {
		return nil, bodyError(ErrTypeMissing, "Field required")
	}
	return EventFromMap(*raw)
}
