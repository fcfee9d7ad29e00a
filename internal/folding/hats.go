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
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// hats maps the base letter of an x-system digraph to its accented letter.
var hats = map[byte]rune{
	'c': 'ĉ',
	'C': 'Ĉ',
	'g': 'ĝ',
	'G': 'Ĝ',
	'h': 'ĥ',
	'H': 'Ĥ',
	'j': 'ĵ',
	'J': 'Ĵ',
	's': 'ŝ',
	'S': 'Ŝ',
	'u': 'ŭ',
	'U': 'Ŭ',
}

// HatFolder expands Esperanto x-system digraphs such as "cx" or "SX" into
// the accented letters they stand for. The case of the base letter is kept;
// the case of the x is ignored.
type HatFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (HatFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		b := src[nSrc]
		if r, ok := hats[b]; ok {
			if nSrc+1 >= len(src) && !atEOF {
				// The next byte may be an x.
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nSrc+1 < len(src) && (src[nSrc+1] == 'x' || src[nSrc+1] == 'X') {
				if nDst+utf8.RuneLen(r) > len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nDst += utf8.EncodeRune(dst[nDst:], r)
				nSrc += 2
				continue
			}
		}

		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc++
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (HatFolder) Reset() {}
