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

package revo

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-revo/internal/folding"
	"github.com/ianlewis/go-revo/internal/logger"
	"github.com/ianlewis/go-revo/trie"
)

// IndexGetter returns the index for a language.
type IndexGetter interface {
	Get(code string) (*trie.Index, error)
}

// Options are options for a Searcher.
type Options struct {
	// Folder returns a [transform.Transformer] that normalizes queries
	// before lookup. Indexes store folded headwords so the folding must
	// match the folding used when the indexes were built.
	Folder func() transform.Transformer

	// Logger receives messages about languages that could not be searched.
	Logger *log.Logger
}

// DefaultOptions is the default options for a Searcher. Queries are trimmed,
// x-system digraphs are expanded, and the result is lowercased.
var DefaultOptions = &Options{
	Folder: folding.NewQueryFolder,
}

// Searcher searches language indexes in order of preference.
type Searcher struct {
	indexes IndexGetter
	folder  func() transform.Transformer
	log     *log.Logger
}

// NewSearcher returns a new Searcher using indexes from the given
// IndexGetter, typically a [cache.Cache].
func NewSearcher(indexes IndexGetter, opts *Options) *Searcher {
	if opts == nil {
		opts = DefaultOptions
	}

	s := &Searcher{
		indexes: indexes,
		folder:  DefaultOptions.Folder,
		log:     logger.Discard(),
	}
	if opts.Folder != nil {
		s.folder = opts.Folder
	}
	if opts.Logger != nil {
		s.log = opts.Logger
	}
	return s
}

// Search normalizes query and searches the indexes of languages in order.
// It returns up to maxResults results from the first language with any
// matches along with that language's position in languages. If no language
// matches, Search returns no results and position 0.
//
// A language whose index cannot be loaded or is corrupt is skipped. If no
// language matches and some were skipped, the returned error joins the
// errors for the skipped languages.
func (s *Searcher) Search(languages []string, query string, maxResults int) ([]trie.Result, int, error) {
	folded, _, err := transform.String(s.folder(), query)
	if err != nil {
		return nil, 0, fmt.Errorf("folding query %q: %w", query, err)
	}
	if !utf8.ValidString(folded) {
		s.log.Debug("query is not valid UTF-8", "query", query)
		return nil, 0, nil
	}

	var errs []error
	for i, code := range languages {
		idx, err := s.indexes.Get(code)
		if err != nil {
			s.log.Warn("skipping language", "lang", code, "err", err)
			errs = append(errs, err)
			continue
		}

		results, err := idx.Search(folded, maxResults)
		if err != nil {
			s.log.Warn("skipping language", "lang", code, "err", err)
			errs = append(errs, fmt.Errorf("searching %q: %w", code, err))
			continue
		}
		if len(results) > 0 {
			return results, i, nil
		}
	}

	return nil, 0, errors.Join(errs...)
}
