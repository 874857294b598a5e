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
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/tars-platform/recommender/pkg/config"
	"github.com/tars-platform/recommender/pkg/recommender"
	"github.com/tars-platform/recommender/pkg/serializer"
)

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recommend",
		EnableShellCompletion: true,
		Usage:                 "Recommend an action for an event file",
		Description: `Load an event from a JSON or YAML file, validate it the way the service
does, and print the recommended action. No API key is needed.

  tars recommend --event event.json
  tars recommend -e event.yaml --config cm://tars/recommender --format yaml -o action.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "event",
				Aliases:  []string{"e"},
				Usage:    "Path to the event file (.json, .yaml or .yml)",
				Required: true,
			},
			configFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			eventPath := cmd.String("event")
			event, err := recommender.LoadEvent(eventPath)
			if err != nil {
				var ve *recommender.ValidationError
				if errors.As(err, &ve) {
					return fmt.Errorf("event file %q: %w", eventPath, err)
				}
				return fmt.Errorf("failed to load event from %q: %w", eventPath, err)
			}

			source := cmd.String("config")
			if source == "" {
				source = config.SourceFromEnv()
			}
			rec := recommender.NewDefaultRecommender(config.Load(ctx, source))

			resp, err := rec.Recommend(ctx, event)
			if err != nil {
				return fmt.Errorf("error recommending action: %w", err)
			}

			ser, err := newWriter(cmd, outFormat)
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(resp)
		},
	}
}

// newWriter writes to --output when set, otherwise to the command's writer.
func newWriter(cmd *cli.Command, format serializer.Format) (*serializer.Writer, error) {
	if path := cmd.String("output"); path != "" {
		return serializer.NewFileWriterOrStdout(format, path)
	}
	return serializer.NewWriter(format, cmd.Root().Writer), nil
}
