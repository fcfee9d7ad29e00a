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

// Package cache keeps a small number of language indexes in memory.
package cache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/ianlewis/go-revo/internal/logger"
	"github.com/ianlewis/go-revo/source"
	"github.com/ianlewis/go-revo/trie"
)

// Capacity is the maximum number of indexes held by a Cache.
const Capacity = 5

// Options are options for a Cache.
type Options struct {
	// Logger receives load and eviction messages.
	Logger *log.Logger
}

// Cache is a least recently used cache of language indexes. Indexes missing
// from the cache are loaded from a [source.Source].
//
// Lookups, loads, and evictions happen under a single lock. A slow load
// blocks all other callers until it completes.
type Cache struct {
	mu  sync.Mutex
	src source.Source
	lru *simplelru.LRU[string, *trie.Index]
	log *log.Logger
}

// New returns a new empty Cache loading indexes from src.
func New(src source.Source, opts *Options) *Cache {
	l := logger.Discard()
	if opts != nil && opts.Logger != nil {
		l = opts.Logger
	}

	c := &Cache{
		src: src,
		log: l,
	}

	lru, err := simplelru.NewLRU(Capacity, func(code string, _ *trie.Index) {
		c.log.Debug("evicted index", "lang", code)
	})
	if err != nil {
		// NewLRU only fails for a non-positive size.
		panic(err)
	}
	c.lru = lru

	return c
}

// Get returns the index for the language with the given code, loading it if
// it is not cached. Errors wrap [source.ErrIO] if the index could not be
// read, including for malformed language codes which also wrap
// [source.ErrInvalidLanguage], or [trie.ErrCorruptIndex] if it is malformed.
// Failed loads are not cached.
func (c *Cache) Get(code string) (*trie.Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.lru.Get(code); ok {
		return idx, nil
	}

	idx, err := c.load(code)
	if err != nil {
		return nil, err
	}
	c.lru.Add(code, idx)
	c.log.Debug("loaded index", "lang", code, "size", idx.Size())

	return idx, nil
}

// Languages returns the codes of the cached languages from most to least
// recently used.
func (c *Cache) Languages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := c.lru.Keys()
	codes := make([]string, len(keys))
	for i, k := range keys {
		codes[len(keys)-1-i] = k
	}
	return codes
}

// Len returns the number of cached indexes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lru.Len()
}

func (c *Cache) load(code string) (*trie.Index, error) {
	r, err := c.src.Open(code)
	if err != nil {
		if errors.Is(err, source.ErrIO) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %q: %w", source.ErrIO, code, err)
	}
	defer r.Close()

	idx, err := trie.New(r)
	if err != nil {
		if errors.Is(err, trie.ErrCorruptIndex) {
			return nil, fmt.Errorf("loading %q: %w", code, err)
		}
		return nil, fmt.Errorf("%w: %q: %w", source.ErrIO, code, err)
	}

	return idx, nil
}
