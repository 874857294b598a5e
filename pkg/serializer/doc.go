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

// Package serializer encodes and decodes JSON and YAML for HTTP responses
// and CLI files.
//
// HTTP handlers reply with RespondJSON, which buffers the body so headers
// are only sent once encoding has succeeded:
//
//	serializer.RespondJSON(w, http.StatusOK, resp)
//
// The CLI reads events with FromFile, picking the format from the
// extension, and writes results through a Writer:
//
//	ev, err := serializer.FromFile[map[string]any]("event.yaml")
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "")
//	defer w.Close()
//	err = w.Serialize(resp)
package serializer
