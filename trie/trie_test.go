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

package trie_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-revo/internal/testutil"
	"github.com/ianlewis/go-revo/trie"
)

var hundoWords = []trie.Result{
	{Word: "hundo", Article: 5, Mark: 0},
	{Word: "hundoj", Article: 6, Mark: 0},
	{Word: "kato", Article: 7, Mark: 0},
}

func mustIndex(t *testing.T, data []byte) *trie.Index {
	t.Helper()

	idx, err := trie.NewFromBytes(data)
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	return idx
}

// TestIndex_Search tests Index.Search.
func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		words      []trie.Result
		prefix     string
		maxResults int

		expected []trie.Result
	}{
		{
			name:       "prefix",
			words:      hundoWords,
			prefix:     "hun",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "hundo", Article: 5, Mark: 0},
				{Word: "hundoj", Article: 6, Mark: 0},
			},
		},
		{
			name:       "single match",
			words:      hundoWords,
			prefix:     "kat",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "kato", Article: 7, Mark: 0},
			},
		},
		{
			name:       "full word",
			words:      hundoWords,
			prefix:     "hundoj",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "hundoj", Article: 6, Mark: 0},
			},
		},
		{
			name:       "full word with longer words",
			words:      hundoWords,
			prefix:     "hundo",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "hundo", Article: 5, Mark: 0},
				{Word: "hundoj", Article: 6, Mark: 0},
			},
		},
		{
			name:       "full word counts toward max results",
			words:      hundoWords,
			prefix:     "hundo",
			maxResults: 1,

			expected: []trie.Result{
				{Word: "hundo", Article: 5, Mark: 0},
			},
		},
		{
			name:       "full word leaf",
			words:      hundoWords,
			prefix:     "kato",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "kato", Article: 7, Mark: 0},
			},
		},
		{
			name: "full word multi-byte",
			words: []trie.Result{
				{Word: "ŝajni", Article: 10, Mark: 0},
			},
			prefix:     "ŝajni",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "ŝajni", Article: 10, Mark: 0},
			},
		},
		{
			name: "prefix node is not a word",
			words: []trie.Result{
				{Word: "hundoj", Article: 6, Mark: 0},
			},
			prefix:     "hundo",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "hundoj", Article: 6, Mark: 0},
			},
		},
		{
			name:       "no match",
			words:      hundoWords,
			prefix:     "z",
			maxResults: 10,

			expected: nil,
		},
		{
			name:       "past end of word",
			words:      hundoWords,
			prefix:     "hundojn",
			maxResults: 10,

			expected: nil,
		},
		{
			name:       "empty prefix",
			words:      hundoWords,
			prefix:     "",
			maxResults: 10,

			expected: hundoWords,
		},
		{
			name:       "empty prefix capped",
			words:      hundoWords,
			prefix:     "",
			maxResults: 2,

			expected: []trie.Result{
				{Word: "hundo", Article: 5, Mark: 0},
				{Word: "hundoj", Article: 6, Mark: 0},
			},
		},
		{
			name:       "zero max results",
			words:      hundoWords,
			prefix:     "hun",
			maxResults: 0,

			expected: nil,
		},
		{
			name:       "negative max results",
			words:      hundoWords,
			prefix:     "",
			maxResults: -1,

			expected: nil,
		},
		{
			name:       "empty index",
			words:      nil,
			prefix:     "a",
			maxResults: 10,

			expected: nil,
		},
		{
			name:       "empty index empty prefix",
			words:      nil,
			prefix:     "",
			maxResults: 10,

			expected: nil,
		},
		{
			name: "multi-byte",
			words: []trie.Result{
				{Word: "ŝajni", Article: 10, Mark: 0},
				{Word: "ŝafo", Article: 11, Mark: 2},
				{Word: "sako", Article: 12, Mark: 1},
			},
			prefix:     "ŝa",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "ŝajni", Article: 10, Mark: 0},
				{Word: "ŝafo", Article: 11, Mark: 2},
			},
		},
		{
			name: "truncated codepoint",
			words: []trie.Result{
				{Word: "ŝajni", Article: 10, Mark: 0},
			},
			prefix:     "\xc5",
			maxResults: 10,

			expected: nil,
		},
		{
			name: "stored order is not sorted",
			words: []trie.Result{
				{Word: "zebro", Article: 1},
				{Word: "abelo", Article: 2},
				{Word: "zebra", Article: 3},
			},
			prefix:     "",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "zebro", Article: 1},
				{Word: "zebra", Article: 3},
				{Word: "abelo", Article: 2},
			},
		},
		{
			name: "four byte codepoint",
			words: []trie.Result{
				{Word: "a😀b", Article: 1, Mark: 255},
				{Word: "a😀", Article: 65535, Mark: 0},
			},
			prefix:     "a😀",
			maxResults: 10,

			expected: []trie.Result{
				{Word: "a😀", Article: 65535, Mark: 0},
				{Word: "a😀b", Article: 1, Mark: 255},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := mustIndex(t, testutil.MakeTrie(t, test.words))
			results, err := idx.Search(test.prefix, test.maxResults)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if diff := cmp.Diff(test.expected, results, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestIndex_Search_prefixProperty checks that every result starts with the
// prefix and that repeated searches return the same results.
func TestIndex_Search_prefixProperty(t *testing.T) {
	t.Parallel()

	words := []trie.Result{
		{Word: "hundo", Article: 5},
		{Word: "hundoj", Article: 6},
		{Word: "hundejo", Article: 8},
		{Word: "kato", Article: 7},
		{Word: "katido", Article: 9},
		{Word: "ĉevalo", Article: 10},
		{Word: "ĉe", Article: 11},
	}
	idx := mustIndex(t, testutil.MakeTrie(t, words))

	prefixes := []string{"", "h", "hu", "hund", "hunde", "k", "kat", "kati", "ĉ", "ĉe", "x"}
	for _, p := range prefixes {
		for _, n := range []int{0, 1, 2, 3, 100} {
			first, err := idx.Search(p, n)
			if err != nil {
				t.Fatalf("Search(%q, %d): %v", p, n, err)
			}
			if len(first) > n {
				t.Errorf("Search(%q, %d): got %d results", p, n, len(first))
			}
			for _, r := range first {
				if !strings.HasPrefix(r.Word, p) {
					t.Errorf("Search(%q, %d): result %q does not start with prefix", p, n, r.Word)
				}
			}

			second, err := idx.Search(p, n)
			if err != nil {
				t.Fatalf("Search(%q, %d): %v", p, n, err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("Search(%q, %d) not idempotent (-first, +second):\n%s", p, n, diff)
			}
		}
	}
}

// TestIndex_Search_corrupt tests that malformed records are reported.
func TestIndex_Search_corrupt(t *testing.T) {
	t.Parallel()

	// Offsets into the hundo index. The "h" record starts directly after the
	// header and is followed by its "u" child.
	const (
		hOffset = 4
		uOffset = 9
	)

	tests := []struct {
		name   string
		offset int
		field  uint32
		prefix string
	}{
		{
			name:   "length past end of file",
			offset: hOffset,
			field:  1000,
			prefix: "k",
		},
		{
			name:   "length shorter than length field",
			offset: hOffset,
			field:  2,
			prefix: "",
		},
		{
			name:   "zero length",
			offset: hOffset,
			field:  0x80000000,
			prefix: "h",
		},
		{
			name:   "child overruns parent",
			offset: uOffset,
			field:  40,
			prefix: "hu",
		},
		{
			name:   "child overruns parent during enumeration",
			offset: uOffset,
			field:  40,
			prefix: "h",
		},
		{
			name:   "word data overruns subtree",
			offset: uOffset,
			field:  0x80000000 | 6,
			prefix: "h",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			data := testutil.MakeTrie(t, hundoWords)
			binary.LittleEndian.PutUint32(data[test.offset:], test.field)
			idx := mustIndex(t, data)

			results, err := idx.Search(test.prefix, 10)
			if diff := cmp.Diff(trie.ErrCorruptIndex, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Search error (-want, +got):\n%s", diff)
			}
			if len(results) != 0 {
				t.Fatalf("Search: unexpected results %v", results)
			}
		})
	}
}

type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}

var errRead = errors.New("read error")

// TestNew tests New.
func TestNew(t *testing.T) {
	t.Parallel()

	valid := testutil.MakeTrie(t, hundoWords)

	withLength := func(b []byte, length uint32) []byte {
		c := bytes.Clone(b)
		binary.LittleEndian.PutUint32(c, length)
		return c
	}

	tests := []struct {
		name string
		data []byte

		err error
	}{
		{
			name: "valid",
			data: valid,
			err:  nil,
		},
		{
			name: "header only",
			data: []byte{4, 0, 0, 0},
			err:  nil,
		},
		{
			name: "empty",
			data: []byte{},
			err:  trie.ErrCorruptIndex,
		},
		{
			name: "short header",
			data: []byte{4, 0},
			err:  trie.ErrCorruptIndex,
		},
		{
			name: "declared length too short",
			data: withLength(valid, uint32(len(valid)-1)),
			err:  trie.ErrCorruptIndex,
		},
		{
			name: "declared length too long",
			data: withLength(valid, uint32(len(valid)+1)),
			err:  trie.ErrCorruptIndex,
		},
		{
			name: "declared length smaller than header",
			data: []byte{3, 0, 0, 0},
			err:  trie.ErrCorruptIndex,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx, err := trie.New(bytes.NewReader(test.data))
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("New error (-want, +got):\n%s", diff)
			}
			if err == nil {
				if diff := cmp.Diff(len(test.data), idx.Size()); diff != "" {
					t.Fatalf("Size (-want, +got):\n%s", diff)
				}
			}

			idx, err = trie.NewFromBytes(test.data)
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("NewFromBytes error (-want, +got):\n%s", diff)
			}
			if err == nil {
				if diff := cmp.Diff(len(test.data), idx.Size()); diff != "" {
					t.Fatalf("Size (-want, +got):\n%s", diff)
				}
			}
		})
	}
}

// TestNew_readError tests that reader errors are not reported as corruption.
func TestNew_readError(t *testing.T) {
	t.Parallel()

	_, err := trie.New(&errReader{err: errRead})
	if diff := cmp.Diff(errRead, err, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("New error (-want, +got):\n%s", diff)
	}
	if errors.Is(err, trie.ErrCorruptIndex) {
		t.Fatalf("New: read error reported as corruption: %v", err)
	}
}
