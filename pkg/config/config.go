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
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tars-platform/recommender/pkg/defaults"
	"gopkg.in/yaml.v3"
)

// Action holds the resolved default action settings.
type Action struct {
	Channel string `json:"channel" yaml:"channel"`
	Message string `json:"message" yaml:"message"`
}

// Config is the typed service configuration. It is resolved once at start
// and never mutated afterwards.
type Config struct {
	Action Action `json:"action" yaml:"action"`
}

// Default returns the configuration used when no document is available.
func Default() *Config {
	return &Config{
		Action: Action{
			Channel: defaults.ActionChannel,
			Message: defaults.ActionMessage,
		},
	}
}

// Channel returns the configured action channel.
func (c *Config) Channel() string {
	if c == nil || c.Action.Channel == "" {
		return defaults.ActionChannel
	}
	return c.Action.Channel
}

// Message returns the configured action message.
func (c *Config) Message() string {
	if c == nil || c.Action.Message == "" {
		return defaults.ActionMessage
	}
	return c.Action.Message
}

type document struct {
	Action yaml.Node `yaml:"action"`
}

type actionDocument struct {
	Channel *yaml.Node `yaml:"channel"`
	Message *yaml.Node `yaml:"message"`
}

// Parse decodes a YAML (or JSON) document into a Config. Keys that are
// absent, null or empty resolve to defaults. Scalar values of any type are
// taken in their string form. An action node that is not a mapping is
// treated as absent.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	// Empty or comment-only documents decode to a zero node.
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return cfg, nil
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if doc.Action.Kind != yaml.MappingNode {
		return cfg, nil
	}

	var act actionDocument
	if err := doc.Action.Decode(&act); err != nil {
		return nil, fmt.Errorf("failed to decode action: %w", err)
	}

	if v := scalar(act.Channel); v != "" {
		cfg.Action.Channel = v
	}
	if v := scalar(act.Message); v != "" {
		cfg.Action.Message = v
	}

	return cfg, nil
}

// scalar returns the string form of a scalar node. Nulls and collections
// yield an empty string. Booleans and numbers are resolved first and then
// printed the way Python's str() prints them, so true becomes "True" and
// 0x10 becomes "16". Quoted strings keep their text.
func scalar(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}

	switch n.ShortTag() {
	case "!!null":
		return ""
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			if b {
				return "True"
			}
			return "False"
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return strconv.FormatInt(i, 10)
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return formatFloat(f)
		}
	}
	return n.Value
}

// formatFloat prints f with the shortest round-trip digits, using
// exponent form outside [1e-4, 1e16) and keeping a ".0" on whole numbers.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
