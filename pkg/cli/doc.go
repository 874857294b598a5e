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

// Package cli implements the tars command line.
//
// # Commands
//
// serve - Run the HTTP recommendation service:
//
//	tars serve [--config cm://tars/recommender] [--banner art/tars_text.txt] [--port 8080]
//
// hash-key - Derive the API_KEY_HASH value for a client key:
//
//	tars hash-key my-secret
//	printf my-secret | tars hash-key --stdin
//
// recommend - Recommend an action for an event file without the HTTP layer:
//
//	tars recommend --event event.json [--config config/default.yaml] [--format yaml] [--output action.yaml]
//
// The event file is validated with the same rules as the HTTP request body.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info, env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	TARS_CONFIG    Configuration source for serve and recommend
//	TARS_BANNER    Banner path for serve
//	API_KEY_HASH   Expected API key digest for serve
//	ENV            Deployment environment label for serve
//	PORT           Listen port for serve
//
// # Exit Codes
//
//	0  Success
//	1  Any failure (invalid arguments, invalid event, server error)
package cli
