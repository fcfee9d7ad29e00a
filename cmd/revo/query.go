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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-revo/lang"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Search headwords beginning with QUERY",
	ArgsUsage: "QUERY",
	Description: strings.Join([]string{
		"Search the main language, Esperanto, and recently used languages in",
		"order and print the headwords of the first language with matches.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "lang",
			Usage:   "search `CODE` instead of the configured languages (may be repeated)",
			Aliases: []string{"l"},
		},
		&cli.StringFlag{
			Name:    "main",
			Usage:   "search `CODE` first",
			Aliases: []string{"m"},
		},
		&cli.IntFlag{
			Name:    "max",
			Usage:   "print at most `N` headwords",
			Aliases: []string{"n"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one QUERY argument, got %d", ErrFlagParse, c.NArg())
		}

		e, err := newEnv(c)
		if err != nil {
			return err
		}

		languages := c.StringSlice("lang")
		if len(languages) == 0 {
			mainLang := e.config.MainLanguage
			if c.IsSet("main") {
				mainLang = c.String("main")
			}
			languages = lang.SearchOrder(mainLang, e.config.RecentLanguages)
		}

		maxResults := e.config.MaxResults
		if c.IsSet("max") {
			maxResults = c.Int("max")
		}

		results, i, err := e.searcher.Search(languages, c.Args().First(), maxResults)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRevo, err)
		}
		if len(results) == 0 {
			e.log.Info("no results", "query", c.Args().First(), "languages", languages)
			return nil
		}

		if i > 0 {
			// Results came from a fallback language.
			fmt.Fprintf(c.App.Writer, "(%s)\n", e.langs.Name(languages[i], true))
		}

		tbl := table.New("Word", "Article", "Mark").WithWriter(c.App.Writer)
		for _, r := range results {
			tbl.AddRow(r.Word, r.Article, r.Mark)
		}
		tbl.Print()

		return nil
	},
}
