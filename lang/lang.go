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

// Package lang holds metadata about the languages that have indexes and
// decides the order in which languages are searched.
package lang

import (
	"slices"
	"strings"
)

// Esperanto is the code of the dictionary's own language. It is always
// searched.
const Esperanto = "eo"

// maxSearchLanguages is the number of languages SearchOrder returns when
// enough recently used languages are available.
const maxSearchLanguages = 3

// Language is a language with an index.
type Language struct {
	// Code is the language code, e.g. "fr".
	Code string

	// Name is the language's Esperanto name, e.g. "franca".
	Name string
}

// List is a list of known languages. A List is created once and passed to
// the components that need language names.
type List struct {
	byName []Language
	byCode []Language
}

// NewList returns a List of the given languages. The order of languages is
// kept for All.
func NewList(languages []Language) *List {
	byCode := slices.Clone(languages)
	slices.SortStableFunc(byCode, func(a, b Language) int {
		return strings.Compare(a.Code, b.Code)
	})

	return &List{
		byName: slices.Clone(languages),
		byCode: byCode,
	}
}

// All returns all languages in the order given to NewList.
func (l *List) All() []Language {
	return slices.Clone(l.byName)
}

// Name returns the name of the language with the given code. If withArticle
// is true the name is preceded by the Esperanto article. Unknown codes are
// returned unchanged.
func (l *List) Name(code string, withArticle bool) string {
	if code == Esperanto {
		return "esperanto"
	}

	i, found := slices.BinarySearchFunc(l.byCode, code, func(lang Language, code string) int {
		return strings.Compare(lang.Code, code)
	})
	if !found {
		return code
	}

	name := l.byCode[i].Name
	if withArticle {
		return "la " + name
	}
	return name
}

// SearchOrder returns the languages to search in order given the language
// the user chose and the languages they recently used. The main language
// comes first if set, followed by Esperanto and then recently used
// languages, up to three languages in total.
func SearchOrder(main string, recent []string) []string {
	var order []string
	if main != "" {
		order = append(order, main)
	}
	if main != Esperanto {
		order = append(order, Esperanto)
	}

	for _, code := range recent {
		if len(order) >= maxSearchLanguages {
			break
		}
		if code == "" || slices.Contains(order, code) {
			continue
		}
		order = append(order, code)
	}

	return order
}
