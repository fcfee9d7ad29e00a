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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_utf8Len(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		b        byte
		expected int
	}{
		{name: "ascii", b: 'a', expected: 1},
		{name: "two byte", b: "ŝ"[0], expected: 2},
		{name: "three byte", b: "ユ"[0], expected: 3},
		{name: "four byte", b: "😀"[0], expected: 4},
		{name: "five byte", b: 0xf8, expected: 5},
		{name: "six byte", b: 0xfc, expected: 6},
		{name: "continuation byte", b: 0x80, expected: 6},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, utf8Len(test.b)); diff != "" {
				t.Fatalf("utf8Len (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestBuilder_Bytes tests the serialized layout written by Builder.
func TestBuilder_Bytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []Result

		expected []byte
	}{
		{
			name:     "empty",
			words:    nil,
			expected: []byte{4, 0, 0, 0},
		},
		{
			name: "single char word",
			words: []Result{
				{Word: "a", Article: 0x0201, Mark: 3},
			},
			expected: []byte{
				12, 0, 0, 0,
				8, 0, 0, 0x80, 'a', 0x01, 0x02, 3,
			},
		},
		{
			name: "shared prefix",
			words: []Result{
				{Word: "ab", Article: 1, Mark: 0},
				{Word: "a", Article: 2, Mark: 1},
			},
			expected: []byte{
				20, 0, 0, 0,
				16, 0, 0, 0x80, 'a', 2, 0, 1,
				8, 0, 0, 0x80, 'b', 1, 0, 0,
			},
		},
		{
			name: "siblings in insertion order",
			words: []Result{
				{Word: "b", Article: 1},
				{Word: "a", Article: 2},
			},
			expected: []byte{
				20, 0, 0, 0,
				8, 0, 0, 0x80, 'b', 1, 0, 0,
				8, 0, 0, 0x80, 'a', 2, 0, 0,
			},
		},
		{
			name: "duplicate replaces",
			words: []Result{
				{Word: "a", Article: 1, Mark: 1},
				{Word: "a", Article: 2, Mark: 2},
			},
			expected: []byte{
				12, 0, 0, 0,
				8, 0, 0, 0x80, 'a', 2, 0, 2,
			},
		},
		{
			name: "multi-byte",
			words: []Result{
				{Word: "ĉ", Article: 1},
			},
			expected: []byte{
				13, 0, 0, 0,
				9, 0, 0, 0x80, 0xc4, 0x89, 1, 0, 0,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b := NewBuilder()
			for _, w := range test.words {
				if err := b.Add(w.Word, w.Article, w.Mark); err != nil {
					t.Fatalf("Add: %v", err)
				}
			}
			got, err := b.Bytes()
			if err != nil {
				t.Fatalf("Bytes: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Bytes (-want, +got):\n%s", diff)
			}
		})
	}
}
