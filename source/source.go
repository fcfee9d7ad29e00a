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

// Package source provides the raw index data for each language.
package source

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"github.com/ianlewis/go-dictzip"
)

var (
	// ErrIO indicates that a language's index could not be read.
	ErrIO = errors.New("reading language index")

	// ErrInvalidLanguage indicates that a language code is malformed.
	ErrInvalidLanguage = errors.New("invalid language code")
)

var codeRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Source opens the index data for a language.
type Source interface {
	// Open returns a reader for the index data of the language with the
	// given code. The caller closes the reader.
	Open(code string) (io.ReadCloser, error)
}

// Func adapts a function to a Source.
type Func func(code string) (io.ReadCloser, error)

// Open implements [Source.Open].
func (f Func) Open(code string) (io.ReadCloser, error) {
	return f(code)
}

type compression int

const (
	uncompressed compression = iota
	gzipped
	dictzipped
)

var indexExts = []struct {
	ext         string
	compression compression
}{
	{".bin", uncompressed},
	{".bin.gz", gzipped},
	{".bin.dz", dictzipped},
}

// FS is a Source that reads index files named "index-<code>.bin" from a file
// system. Indexes may be compressed with gzip (".bin.gz") or dictzip
// (".bin.dz").
type FS struct {
	fsys fs.FS
}

// NewFS returns a Source reading index files from fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// NewDir returns a Source reading index files from the directory at path.
func NewDir(path string) *FS {
	return NewFS(os.DirFS(path))
}

// Open implements [Source.Open].
func (s *FS) Open(code string) (io.ReadCloser, error) {
	if !codeRegex.MatchString(code) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
	}

	for _, e := range indexExts {
		name := "index-" + code + e.ext
		f, err := s.fsys.Open(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%w: opening %q: %w", ErrIO, name, err)
		}

		r, err := decompress(f, e.compression)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: opening %q: %w", ErrIO, name, err)
		}
		return r, nil
	}

	return nil, fmt.Errorf("%w: no index for %q: %w", ErrIO, code, fs.ErrNotExist)
}

// Has returns true if an index file exists for the language.
func (s *FS) Has(code string) bool {
	if !codeRegex.MatchString(code) {
		return false
	}
	for _, e := range indexExts {
		if _, err := fs.Stat(s.fsys, "index-"+code+e.ext); err == nil {
			return true
		}
	}
	return false
}

func decompress(f fs.File, c compression) (io.ReadCloser, error) {
	switch c {
	case gzipped:
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	case dictzipped:
		rs, ok := f.(io.ReadSeeker)
		if !ok {
			return nil, errors.New("dictzip file is not seekable")
		}
		z, err := dictzip.NewReader(rs)
		if err != nil {
			return nil, fmt.Errorf("creating dictzip reader: %w", err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	default:
		return f, nil
	}
}

// readCloser closes all of its closers in order.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
