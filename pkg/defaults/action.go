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

package defaults

// Action defaults used when the configuration does not set them.
const (
	// ActionChannel is the channel returned when action.channel is absent.
	ActionChannel = "web"

	// ActionMessage is the message returned when action.message is absent.
	ActionMessage = "hello client"
)

// Startup resource locations, relative to the working directory.
const (
	// ConfigPath is the default configuration source.
	ConfigPath = "config/default.yaml"

	// BannerPath is the default location of the startup banner.
	BannerPath = "art/tars_text.txt"

	// EnvFile is the default dotenv file read for settings.
	EnvFile = ".env"
)

// Environment defaults.
const (
	// Env is the deployment environment tag used when ENV is not set.
	Env = "local"
)
