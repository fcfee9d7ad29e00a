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
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// headerSize is the size of the file's total length field.
	headerSize = 4

	// lengthFieldSize is the size of a node record's length field.
	lengthFieldSize = 4

	// wordDataSize is the size of the article and mark ids that follow the
	// codepoint of nodes completing a headword.
	wordDataSize = 3

	wordFlag   = 0x80000000
	lengthMask = 0x7fffffff
)

// ErrCorruptIndex indicates that the index data is malformed.
var ErrCorruptIndex = errors.New("corrupt index")

// Result is a headword matching a search.
type Result struct {
	// Word is the full headword.
	Word string

	// Article is the id of the article defining the word.
	Article uint16

	// Mark is the section of the article where the word is defined.
	Mark uint8
}

// Index is a language's prefix index. An Index is immutable and safe for
// concurrent use.
type Index struct {
	data []byte
}

// New reads a complete index from r. The length declared in the index
// header must match the number of bytes available from r.
func New(r io.Reader) (*Index, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: short header", ErrCorruptIndex)
		}
		return nil, fmt.Errorf("reading index header: %w", err)
	}

	total := int64(binary.LittleEndian.Uint32(hdr[:]))
	if total < headerSize {
		return nil, fmt.Errorf("%w: declared length %d", ErrCorruptIndex, total)
	}

	// Read one byte past the declared length so that trailing data is
	// detected without trusting the header for the allocation size.
	rest, err := io.ReadAll(io.LimitReader(r, total-headerSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	if got := int64(len(rest)) + headerSize; got != total {
		return nil, fmt.Errorf("%w: declared length %d, got %d bytes", ErrCorruptIndex, total, got)
	}

	data := make([]byte, 0, total)
	data = append(data, hdr[:]...)
	data = append(data, rest...)
	return &Index{data: data}, nil
}

// NewFromBytes returns an index over b. The Index takes ownership of b which
// must not be modified afterwards.
func NewFromBytes(b []byte) (*Index, error) {
	if len(b) < headerSize {
		return nil, fmt.Errorf("%w: short header", ErrCorruptIndex)
	}
	if total := binary.LittleEndian.Uint32(b); int64(total) != int64(len(b)) {
		return nil, fmt.Errorf("%w: declared length %d, got %d bytes", ErrCorruptIndex, total, len(b))
	}
	return &Index{data: b}, nil
}

// Size returns the size of the index data in bytes.
func (idx *Index) Size() int {
	return len(idx.data)
}

// node is a decoded node record header.
type node struct {
	// start is the offset of the record.
	start int

	// end is the offset of the end of the record's subtree.
	end int

	// char holds the node's codepoint bytes.
	char []byte

	// children is the offset of the first child record.
	children int

	isWord  bool
	article uint16
	mark    uint8
}

// readNode decodes the node record at offset start. The record's subtree
// must fit within limit.
func (idx *Index) readNode(start, limit int) (node, error) {
	if limit > len(idx.data) || start < headerSize || start+lengthFieldSize > limit {
		return node{}, fmt.Errorf("%w: node at offset %d out of bounds", ErrCorruptIndex, start)
	}

	field := binary.LittleEndian.Uint32(idx.data[start:])
	length := int(field & lengthMask)
	if length <= lengthFieldSize {
		return node{}, fmt.Errorf("%w: node at offset %d has length %d", ErrCorruptIndex, start, length)
	}

	n := node{
		start:  start,
		end:    start + length,
		isWord: field&wordFlag != 0,
	}
	if n.end > limit {
		return node{}, fmt.Errorf("%w: node at offset %d overruns its parent", ErrCorruptIndex, start)
	}

	charStart := start + lengthFieldSize
	n.children = charStart + utf8Len(idx.data[charStart])
	if n.isWord {
		n.children += wordDataSize
	}
	if n.children > n.end {
		return node{}, fmt.Errorf("%w: node at offset %d overruns its subtree", ErrCorruptIndex, start)
	}

	n.char = idx.data[charStart:n.children]
	if n.isWord {
		wordData := n.children - wordDataSize
		n.char = idx.data[charStart:wordData]
		n.article = binary.LittleEndian.Uint16(idx.data[wordData:])
		n.mark = idx.data[wordData+2]
	}

	return n, nil
}

// utf8Len returns the length of the UTF-8 sequence starting with b. Lengths
// follow the RFC 2279 UTF-8 definition allowing up to six bytes so that
// lookups use the same units as the tool that wrote the index.
func utf8Len(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	case b&0xfc == 0xf8:
		return 5
	default:
		return 6
	}
}
