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
	"bufio"
	"fmt"
	"math"

	"github.com/urfave/cli/v2"
)

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "Print every headword in the index for LANG",
	ArgsUsage: "LANG",
	Description: "Print the headwords of an index in stored order, one per line\n" +
		"as WORD<TAB>ARTICLE<TAB>MARK. The output can be read by the build command.",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one LANG argument, got %d", ErrFlagParse, c.NArg())
		}

		e, err := newEnv(c)
		if err != nil {
			return err
		}

		idx, err := e.cache.Get(c.Args().First())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRevo, err)
		}

		results, err := idx.Search("", math.MaxInt)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRevo, err)
		}

		w := bufio.NewWriter(c.App.Writer)
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", r.Word, r.Article, r.Mark); err != nil {
				return fmt.Errorf("%w: %w", ErrRevo, err)
			}
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("%w: %w", ErrRevo, err)
		}

		return nil
	},
}
