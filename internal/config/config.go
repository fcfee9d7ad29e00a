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

// Package config loads revo configuration from TOML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ianlewis/go-revo/lang"
)

// DefaultMaxResults is the default maximum number of results per search.
const DefaultMaxResults = 128

// ErrConfig indicates that a configuration file is invalid.
var ErrConfig = errors.New("invalid config")

// Config is the revo configuration.
type Config struct {
	// DataDir is the directory holding index-<code>.bin files.
	DataDir string `toml:"data_dir"`

	// MaxResults is the maximum number of results returned by a search.
	MaxResults int `toml:"max_results"`

	// MainLanguage is the language searched first.
	MainLanguage string `toml:"main_language"`

	// RecentLanguages are recently used languages searched after the main
	// language and Esperanto.
	RecentLanguages []string `toml:"recent_languages"`

	// LogLevel is the minimum level of log messages, e.g. "info".
	LogLevel string `toml:"log_level"`

	// Languages are the languages with indexes.
	Languages []LanguageConfig `toml:"language"`
}

// LanguageConfig describes a language.
type LanguageConfig struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		MaxResults: DefaultMaxResults,
		LogLevel:   log.InfoLevel.String(),
	}
}

// LoadConfig loads the TOML file at path over the default configuration.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads TOML configuration from r over the default configuration.
func Decode(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrConfig, undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.MaxResults <= 0 {
		return fmt.Errorf("%w: max_results must be positive: %d", ErrConfig, c.MaxResults)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrConfig, err)
	}
	for i, l := range c.Languages {
		if l.Code == "" {
			return fmt.Errorf("%w: language %d has no code", ErrConfig, i)
		}
	}
	return nil
}

// LanguageList returns the configured languages as a [lang.List].
func (c *Config) LanguageList() *lang.List {
	languages := make([]lang.Language, 0, len(c.Languages))
	for _, l := range c.Languages {
		languages = append(languages, lang.Language{
			Code: l.Code,
			Name: l.Name,
		})
	}
	return lang.NewList(languages)
}

// SearchOrder returns the languages to search for the configured main and
// recent languages.
func (c *Config) SearchOrder() []string {
	return lang.SearchOrder(c.MainLanguage, c.RecentLanguages)
}
