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

package trie

import (
	"bytes"
)

// frame is a pending scan of the sibling records in [start, end). wordLen is
// the length of the word accumulated before the first of those siblings.
type frame struct {
	start   int
	end     int
	wordLen int
}

// Search returns up to maxResults headwords that begin with prefix along
// with their article and mark ids. Results are returned in the order they
// are stored in the index. The prefix is compared byte for byte against the
// index so callers should fold it first. A prefix ending in a truncated
// codepoint matches nothing.
//
// Search returns an error wrapping ErrCorruptIndex if a malformed record is
// encountered. No results are returned in that case.
func (idx *Index) Search(prefix string, maxResults int) ([]Result, error) {
	if maxResults <= 0 {
		return nil, nil
	}

	start, end, last, found, err := idx.descend(prefix)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var results []Result
	if last != nil && last.isWord {
		// The prefix itself is a headword.
		results = append(results, Result{
			Word:    prefix,
			Article: last.article,
			Mark:    last.mark,
		})
	}
	if start >= end {
		return results, nil
	}

	word := make([]byte, len(prefix), len(prefix)+32)
	copy(word, prefix)

	stack := make([]frame, 0, 64)
	stack = append(stack, frame{start: start, end: end, wordLen: len(prefix)})
	for len(stack) > 0 && len(results) < maxResults {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, err := idx.readNode(f.start, f.end)
		if err != nil {
			return nil, err
		}

		word = append(word[:f.wordLen], n.char...)
		if n.isWord {
			results = append(results, Result{
				Word:    string(word),
				Article: n.article,
				Mark:    n.mark,
			})
		}

		// The sibling is pushed first so that the node's children are
		// visited before it and results follow the stored order.
		if n.end < f.end {
			stack = append(stack, frame{start: n.end, end: f.end, wordLen: f.wordLen})
		}
		if n.children < n.end {
			stack = append(stack, frame{start: n.children, end: n.end, wordLen: len(word)})
		}
	}

	return results, nil
}

// descend follows prefix from the root one codepoint at a time. It returns
// the window holding the children of the node reached along with that node,
// which is nil for an empty prefix. found is false if no headword starts
// with prefix.
func (idx *Index) descend(prefix string) (start, end int, last *node, found bool, err error) {
	start, end = headerSize, len(idx.data)

	p := []byte(prefix)
	for len(p) > 0 {
		charLen := utf8Len(p[0])
		if charLen > len(p) {
			// Truncated codepoint.
			return 0, 0, nil, false, nil
		}
		char := p[:charLen]

		for {
			if start >= end {
				return 0, 0, nil, false, nil
			}
			n, err := idx.readNode(start, end)
			if err != nil {
				return 0, 0, nil, false, err
			}
			if bytes.Equal(n.char, char) {
				start, end = n.children, n.end
				last = &n
				break
			}
			start = n.end
		}

		p = p[charLen:]
	}

	return start, end, last, true, nil
}
