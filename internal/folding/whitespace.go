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

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// TrimFolder removes whitespace from the beginning and end of the input.
// Internal whitespace is kept as is. Bytes that are not valid UTF-8 are
// copied through unchanged.
type TrimFolder struct {
	// notStart is true after encountering the first non-whitespace rune.
	notStart bool

	// pending holds internal whitespace that is only emitted if it is
	// followed by a non-whitespace rune.
	pending []byte
}

// Transform implements [transform.Transformer.Transform].
func (w *TrimFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if c != utf8.RuneError && unicode.IsSpace(c) {
			if w.notStart {
				w.pending = append(w.pending, src[nSrc:nSrc+size]...)
			}
			nSrc += size
			continue
		}

		if nDst+len(w.pending)+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], w.pending)
		w.pending = w.pending[:0]
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		w.notStart = true
	}

	// NOTE: whitespace still pending at EOF is trailing and is dropped.
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *TrimFolder) Reset() {
	*w = TrimFolder{}
}
