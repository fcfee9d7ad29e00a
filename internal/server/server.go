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

// Package server answers search requests encoded with msgpack.
//
// Clients write a stream of requests and read one response per request in
// the same order:
//
//	{"id": "q1", "langs": ["fr", "eo"], "q": "hund", "l": 10}
//
// Responses carry the results of the first language with matches and its
// position in the searched languages:
//
//	{"id": "q1", "r": [{"w": "hundo", "a": 5, "m": 0}], "i": 1, "c": 1, "t": 12}
//
// Requests are handled one at a time. Clients that no longer need a
// response discard it by id.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ianlewis/go-revo/internal/logger"
	"github.com/ianlewis/go-revo/trie"
)

// Searcher searches language indexes.
type Searcher interface {
	Search(languages []string, query string, maxResults int) ([]trie.Result, int, error)
}

// Request is a search request.
type Request struct {
	ID        string   `msgpack:"id"`
	Languages []string `msgpack:"langs,omitempty"`
	Query     string   `msgpack:"q"`
	Limit     int      `msgpack:"l,omitempty"`
}

// Result is a single matching headword.
type Result struct {
	Word    string `msgpack:"w"`
	Article uint16 `msgpack:"a"`
	Mark    uint8  `msgpack:"m"`
}

// Response is the response to a Request.
type Response struct {
	ID       string   `msgpack:"id"`
	Results  []Result `msgpack:"r"`
	Language int      `msgpack:"i"`
	Count    int      `msgpack:"c"`

	// TimeTaken is the search time in microseconds.
	TimeTaken int64  `msgpack:"t"`
	Error     string `msgpack:"e,omitempty"`
}

// Options are options for a Server.
type Options struct {
	// Languages are searched when a request names no languages.
	Languages []string

	// MaxResults is used when a request has no positive limit. It also
	// caps request limits.
	MaxResults int

	Logger *log.Logger
}

// Server reads requests and writes responses.
type Server struct {
	searcher   Searcher
	languages  []string
	maxResults int
	log        *log.Logger
}

// New returns a new Server.
func New(searcher Searcher, opts Options) *Server {
	s := &Server{
		searcher:   searcher,
		languages:  opts.Languages,
		maxResults: opts.MaxResults,
		log:        opts.Logger,
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	return s
}

// Serve handles requests read from r until r is exhausted or ctx is done,
// writing responses to w. Requests that cannot be decoded are answered with
// an error response.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	dec := msgpack.NewDecoder(br)
	enc := msgpack.NewEncoder(w)

	s.log.Debug("serving requests")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// The stream may only end between requests.
		if _, err := br.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading request: %w", err)
		}
		raw, err := dec.DecodeRaw()
		if err != nil {
			return fmt.Errorf("reading request: %w", err)
		}

		var resp *Response
		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Error("invalid request", "err", err)
			resp = &Response{Error: fmt.Sprintf("invalid request: %v", err)}
		} else {
			resp = s.Handle(&req)
		}

		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
}

// Handle answers a single request.
func (s *Server) Handle(req *Request) *Response {
	languages := req.Languages
	if len(languages) == 0 {
		languages = s.languages
	}

	limit := req.Limit
	if limit <= 0 || (s.maxResults > 0 && limit > s.maxResults) {
		limit = s.maxResults
	}

	start := time.Now()
	results, i, err := s.searcher.Search(languages, req.Query, limit)
	elapsed := time.Since(start)

	resp := &Response{
		ID:        req.ID,
		Results:   make([]Result, 0, len(results)),
		Language:  i,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	}
	for _, r := range results {
		resp.Results = append(resp.Results, Result{
			Word:    r.Word,
			Article: r.Article,
			Mark:    r.Mark,
		})
	}
	if err != nil {
		s.log.Warn("search failed", "id", req.ID, "query", req.Query, "err", err)
		resp.Error = err.Error()
	}

	s.log.Debug("handled request", "id", req.ID, "query", req.Query, "count", resp.Count, "time", elapsed)
	return resp
}
