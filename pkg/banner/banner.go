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

// Package banner loads the cosmetic startup art printed to the logs.
package banner

import (
	"log/slog"
	"os"
	"strings"

	"github.com/tars-platform/recommender/pkg/defaults"
)

// EnvBannerPath names the environment variable overriding the banner path.
const EnvBannerPath = "TARS_BANNER"

// PathFromEnv returns the banner path named by TARS_BANNER, or the default.
func PathFromEnv() string {
	if v := os.Getenv(EnvBannerPath); v != "" {
		return v
	}
	return defaults.BannerPath
}

// Load returns the banner text at path. Any failure is logged as a warning
// and yields an empty string; it never blocks startup.
func Load(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("banner not loaded", "path", path, "error", err)
		return ""
	}
	return strings.TrimRight(string(data), "\n")
}

// Log writes a non-empty banner to the default logger.
func Log(text string) {
	if text == "" {
		return
	}
	slog.Info("startup banner", "banner", "\n"+text)
}
