// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-revo/internal/server"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Answer msgpack search requests on standard input",
	Description: "Read msgpack encoded search requests from standard input and write\n" +
		"one response per request to standard output. Requests that name no\n" +
		"languages search the configured languages.",
	Action: func(c *cli.Context) error {
		e, err := newEnv(c)
		if err != nil {
			return err
		}

		s := server.New(e.searcher, server.Options{
			Languages:  e.config.SearchOrder(),
			MaxResults: e.config.MaxResults,
			Logger:     e.log,
		})
		if err := s.Serve(c.Context, c.App.Reader, c.App.Writer); err != nil {
			return fmt.Errorf("%w: %w", ErrRevo, err)
		}
		return nil
	},
}
