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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-revo"
	"github.com/ianlewis/go-revo/cache"
	"github.com/ianlewis/go-revo/internal/config"
	"github.com/ianlewis/go-revo/internal/logger"
	"github.com/ianlewis/go-revo/lang"
	"github.com/ianlewis/go-revo/source"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrRevo is a parent error for all command errors.
var ErrRevo = errors.New("revo")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrRevo)

// ErrUnsupported indicates a feature is unsupported.
var ErrUnsupported = fmt.Errorf("%w: unsupported", ErrRevo)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `revo --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// env holds the state shared by commands.
type env struct {
	config   *config.Config
	dataDir  string
	source   *source.FS
	cache    *cache.Cache
	searcher *revo.Searcher
	langs    *lang.List
	log      *log.Logger
}

// newEnv loads the configuration and applies the global flags.
func newEnv(c *cli.Context) (*env, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log-level: %w", ErrFlagParse, err)
	}
	log.SetLevel(level)
	l := logger.NewWithLevel(c.App.ErrWriter, c.App.Name, level)

	dataDir := c.String("data-dir")
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	if dataDir == "" {
		dataDir = findDataDir()
	}
	l.Debug("using data directory", "dir", dataDir)

	src := source.NewDir(dataDir)
	idxCache := cache.New(src, &cache.Options{
		Logger: l,
	})

	return &env{
		config:  cfg,
		dataDir: dataDir,
		source:  src,
		cache:   idxCache,
		searcher: revo.NewSearcher(idxCache, &revo.Options{
			Folder: revo.DefaultOptions.Folder,
			Logger: l,
		}),
		langs: cfg.LanguageList(),
		log:   l,
	}, nil
}

// loadConfig loads the config at path. If path is empty the user config
// file is loaded if it exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRevo, err)
		}
		return cfg, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(filepath.Join(dir, "revo", "config.toml"))
	if errors.Is(err, fs.ErrNotExist) {
		return config.DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRevo, err)
	}
	return cfg, nil
}

// findDataDir returns the first existing data location.
func findDataDir() string {
	for _, dir := range dataLocations() {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir
		}
	}
	return "."
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, "\n"), versionInfo.String())
	return err
}

func newRevoApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search Esperanto dictionary indexes.",
		Description: strings.Join([]string{
			"Dictionary headword search written in Go.",
			"http://github.com/ianlewis/go-revo",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "read language indexes from `DIR`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log messages at `LEVEL` and above",
				Value: log.InfoLevel.String(),
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			queryCommand,
			dumpCommand,
			buildCommand,
			languagesCommand,
			serveCommand,
		},
	}
}
