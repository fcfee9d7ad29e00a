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

// Package trie implements reading and searching ReVo prefix index files.
//
// An index file maps headwords of one language to the dictionary articles
// that define them. The file is a serialized trie that is searched in place;
// nodes are never materialized. All integers are little-endian.
//
// The file starts with a 32-bit total length which must equal the size of
// the file. The remainder is a flat chain of sibling node records holding
// the children of the (implicit) root node. Each node record comes in four
// parts:
//  1. A 32-bit length field. The low 31 bits are the byte offset from the
//     start of the record to the end of its subtree, which is where the next
//     sibling begins. The top bit is set if the node completes a headword.
//  2. One UTF-8 encoded codepoint. Its length is implied by its first byte.
//  3. If the top bit of the length field is set, a 16-bit article id and an
//     8-bit mark id.
//  4. Zero or more child node records filling the rest of the subtree.
package trie
