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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-revo/lang"
)

var languagesCommand = &cli.Command{
	Name:  "languages",
	Usage: "List the configured languages",
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: unexpected arguments", ErrFlagParse)
		}

		e, err := newEnv(c)
		if err != nil {
			return err
		}

		all := e.langs.All()
		hasEsperanto := false
		for _, l := range all {
			if l.Code == lang.Esperanto {
				hasEsperanto = true
				break
			}
		}
		if !hasEsperanto {
			all = append([]lang.Language{{Code: lang.Esperanto}}, all...)
		}

		tbl := table.New("Code", "Name", "Index").WithWriter(c.App.Writer)
		for _, l := range all {
			available := "no"
			if e.source.Has(l.Code) {
				available = "yes"
			}
			tbl.AddRow(l.Code, e.langs.Name(l.Code, false), available)
		}
		tbl.Print()

		return nil
	},
}
