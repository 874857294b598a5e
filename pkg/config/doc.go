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

// Package config loads the recommender's typed configuration.
//
// The document is YAML (JSON is accepted as a YAML subset) with two optional
// keys:
//
//	action:
//	  channel: web
//	  message: hello client
//
// Load never fails. A missing file produces a warning and the defaults,
// and so does an unreadable or malformed one. Sources of the form
// cm://namespace/name are read from a Kubernetes ConfigMap, trying the
// data keys config.yaml, config.yml and config.json in that order.
//
//	cfg := config.Load(ctx, config.SourceFromEnv())
//	fmt.Println(cfg.Channel(), cfg.Message())
package config
