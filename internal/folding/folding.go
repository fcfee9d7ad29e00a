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

// Package folding implements [transform.Transformer]s used to normalize
// search queries before they are looked up in an index.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// NewQueryFolder returns a transformer that trims surrounding whitespace,
// expands x-system digraphs, and lowercases its input, in that order.
func NewQueryFolder() transform.Transformer {
	return transform.Chain(
		&TrimFolder{},
		HatFolder{},
		cases.Lower(language.Und),
	)
}
