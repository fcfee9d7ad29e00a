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
	"unicode/utf8"
)

var (
	// ErrInvalidWord indicates that a word cannot be added to an index.
	ErrInvalidWord = errors.New("invalid word")

	// ErrIndexTooLarge indicates that a subtree does not fit in a node's
	// 31-bit length field.
	ErrIndexTooLarge = errors.New("index too large")
)

type buildNode struct {
	char     []byte
	isWord   bool
	article  uint16
	mark     uint8
	children []*buildNode

	// size is the size of the serialized subtree, set by computeSizes.
	size int
}

// Builder builds index files. Children of a node are serialized in the
// order they were first added.
type Builder struct {
	root buildNode
}

// NewBuilder returns a new empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds word to the index. Adding a word that is already present
// replaces its article and mark.
func (b *Builder) Add(word string, article uint16, mark uint8) error {
	if word == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	if !utf8.ValidString(word) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidWord, word)
	}

	n := &b.root
	for _, r := range word {
		char := utf8.AppendRune(nil, r)

		var child *buildNode
		for _, c := range n.children {
			if string(c.char) == string(char) {
				child = c
				break
			}
		}
		if child == nil {
			child = &buildNode{char: char}
			n.children = append(n.children, child)
		}
		n = child
	}

	n.isWord = true
	n.article = article
	n.mark = mark
	return nil
}

// Bytes returns the serialized index.
func (b *Builder) Bytes() ([]byte, error) {
	total := b.computeSizes()
	if total > lengthMask {
		return nil, fmt.Errorf("%w: %d bytes", ErrIndexTooLarge, total)
	}

	buf := make([]byte, 0, total)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(total))

	stack := make([]*buildNode, 0, 64)
	stack = pushChildren(stack, &b.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		//nolint:gosec // total size is bounds checked above.
		field := uint32(n.size)
		if n.isWord {
			field |= wordFlag
		}
		buf = binary.LittleEndian.AppendUint32(buf, field)
		buf = append(buf, n.char...)
		if n.isWord {
			buf = binary.LittleEndian.AppendUint16(buf, n.article)
			buf = append(buf, n.mark)
		}
		stack = pushChildren(stack, n)
	}
	return buf, nil
}

// WriteTo writes the serialized index to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	buf, err := b.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("writing index: %w", err)
	}
	return int64(n), nil
}

// computeSizes sets the subtree size of every node and returns the size of
// the whole file.
func (b *Builder) computeSizes() int {
	// Nodes are listed before their children so walking the list backwards
	// sizes children before their parents.
	var order []*buildNode
	stack := pushChildren(nil, &b.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		stack = pushChildren(stack, n)
	}

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		n.size = lengthFieldSize + len(n.char)
		if n.isWord {
			n.size += wordDataSize
		}
		for _, c := range n.children {
			n.size += c.size
		}
	}

	total := headerSize
	for _, c := range b.root.children {
		total += c.size
	}
	return total
}

// pushChildren pushes the children of n onto stack so that the first child
// is popped first.
func pushChildren(stack []*buildNode, n *buildNode) []*buildNode {
	for i := len(n.children) - 1; i >= 0; i-- {
		stack = append(stack, n.children[i])
	}
	return stack
}
