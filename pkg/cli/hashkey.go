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
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tars-platform/recommender/pkg/auth"
)

func hashKeyCmd() *cli.Command {
	return &cli.Command{
		Name:      "hash-key",
		Usage:     "Print the SHA-256 digest of an API key",
		ArgsUsage: "<key>",
		Description: `Print the lowercase hex SHA-256 digest of a client API key. Set the
result as API_KEY_HASH on the server; clients send the key itself in
the api-key header.

  tars hash-key my-secret
  printf my-secret | tars hash-key --stdin`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: "Read the key from standard input",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			key, err := readKey(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, auth.HashKey(key))
			return err
		},
	}
}

func readKey(cmd *cli.Command) (string, error) {
	if cmd.Bool("stdin") {
		if cmd.Args().Present() {
			return "", errors.New("key argument and --stdin are mutually exclusive")
		}
		data, err := io.ReadAll(cmd.Root().Reader)
		if err != nil {
			return "", fmt.Errorf("failed to read key from stdin: %w", err)
		}
		key := strings.TrimRight(string(data), "\r\n")
		if key == "" {
			return "", errors.New("empty key on stdin")
		}
		return key, nil
	}

	if cmd.Args().Len() != 1 {
		return "", errors.New("exactly one key argument is required")
	}
	key := cmd.Args().First()
	if key == "" {
		return "", errors.New("key must not be empty")
	}
	return key, nil
}
