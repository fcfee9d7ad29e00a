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

package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-revo/trie"
)

// MakeTrie creates index file data holding the given words in order.
func MakeTrie(t *testing.T, words []trie.Result) []byte {
	t.Helper()

	b := trie.NewBuilder()
	for _, w := range words {
		if err := b.Add(w.Word, w.Article, w.Mark); err != nil {
			t.Fatal(err)
		}
	}
	data, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	return data
}

// MakeIndexOptions are options for MakeTempIndexDir.
type MakeIndexOptions struct {
	// DictZip indicates that index files should be compressed with DictZip.
	DictZip bool

	// GZip indicates that index files should be compressed with gzip.
	GZip bool
}

// GetExt returns the index file extension for the options.
func (o *MakeIndexOptions) GetExt() string {
	if o != nil {
		if o.DictZip {
			return ".bin.dz"
		}
		if o.GZip {
			return ".bin.gz"
		}
	}
	return ".bin"
}

// MakeTempIndexDir creates a temporary directory holding an index file for
// each language and returns its path. The directory is removed when the test
// completes.
func MakeTempIndexDir(t *testing.T, indexes map[string][]trie.Result, opts *MakeIndexOptions) string {
	t.Helper()

	dir := t.TempDir()
	for code, words := range indexes {
		WriteIndexFile(t, filepath.Join(dir, "index-"+code+opts.GetExt()), MakeTrie(t, words), opts)
	}
	return dir
}

// WriteIndexFile writes raw index data to path, compressing it as given by
// opts.
func WriteIndexFile(t *testing.T, path string, data []byte, opts *MakeIndexOptions) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch {
	case opts != nil && opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.GZip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}
}
