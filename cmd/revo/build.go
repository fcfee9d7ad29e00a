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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-revo/trie"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "Build an index from a word list",
	ArgsUsage: "WORDLIST",
	Description: strings.Join([]string{
		"Read headwords from WORDLIST, one per line as WORD<TAB>ARTICLE<TAB>MARK,",
		"and write an index. ARTICLE and MARK default to 0. Empty lines and lines",
		"starting with '#' are ignored. WORDLIST may be '-' to read standard input.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Usage:   "write the index to `FILE` instead of standard output",
			Aliases: []string{"o"},
		},
		&cli.BoolFlag{
			Name:               "dictzip",
			Usage:              "compress the index with dictzip",
			Aliases:            []string{"z"},
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one WORDLIST argument, got %d", ErrFlagParse, c.NArg())
		}
		out := c.String("out")
		if c.Bool("dictzip") && out == "" {
			return fmt.Errorf("%w: writing dictzip to standard output", ErrUnsupported)
		}

		var r io.Reader = c.App.Reader
		if path := c.Args().First(); path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrRevo, err)
			}
			defer f.Close()
			r = f
		}

		b, err := readWordList(r)
		if err != nil {
			return err
		}

		if out == "" {
			if _, err := b.WriteTo(c.App.Writer); err != nil {
				return fmt.Errorf("%w: %w", ErrRevo, err)
			}
			return nil
		}

		if err := writeIndex(out, b, c.Bool("dictzip")); err != nil {
			return fmt.Errorf("%w: %w", ErrRevo, err)
		}
		return nil
	},
}

// readWordList adds the words of a word list to a new Builder.
func readWordList(r io.Reader) (*trie.Builder, error) {
	b := trie.NewBuilder()

	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) > 3 {
			return nil, fmt.Errorf("%w: line %d: too many fields", ErrRevo, line)
		}

		var article, mark uint64
		var err error
		if len(fields) > 1 {
			article, err = strconv.ParseUint(fields[1], 10, 16)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: article: %w", ErrRevo, line, err)
			}
		}
		if len(fields) > 2 {
			mark, err = strconv.ParseUint(fields[2], 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: mark: %w", ErrRevo, line, err)
			}
		}

		if err := b.Add(fields[0], uint16(article), uint8(mark)); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrRevo, line, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading word list: %w", ErrRevo, err)
	}

	return b, nil
}

// writeIndex writes the index built by b to path.
func writeIndex(path string, b *trie.Builder, compress bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	if !compress {
		_, err = b.WriteTo(f)
		return err
	}

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(z); err != nil {
		return err
	}
	return z.Close()
}
