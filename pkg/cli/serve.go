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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tars-platform/recommender/pkg/api"
	"github.com/tars-platform/recommender/pkg/banner"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP recommendation service",
		Description: `Run the service with POST /recommend-action, GET /health, /ready and /metrics.

The API key digest is read from API_KEY_HASH (or the .env file named by
TARS_ENV_FILE). Without it every recommendation request fails with 500.`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "banner",
				Usage:   "Startup banner file path",
				Sources: cli.EnvVars(banner.EnvBannerPath),
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port (default: PORT or 8080)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx,
				api.WithLogLevel(cmd.String("log-level")),
				api.WithConfigSource(cmd.String("config")),
				api.WithBannerPath(cmd.String("banner")),
				api.WithPort(int(cmd.Int("port"))),
			)
		},
	}
}
