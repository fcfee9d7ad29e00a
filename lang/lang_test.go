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

package lang

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var testLanguages = []Language{
	{Code: "fr", Name: "franca"},
	{Code: "en", Name: "angla"},
	{Code: "de", Name: "germana"},
}

func TestList_Name(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		code        string
		withArticle bool

		expected string
	}{
		{name: "known", code: "fr", expected: "franca"},
		{name: "with article", code: "en", withArticle: true, expected: "la angla"},
		{name: "esperanto", code: "eo", expected: "esperanto"},
		{name: "esperanto with article", code: "eo", withArticle: true, expected: "esperanto"},
		{name: "unknown", code: "xx", expected: "xx"},
		{name: "unknown with article", code: "xx", withArticle: true, expected: "xx"},
	}

	l := NewList(testLanguages)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, l.Name(test.code, test.withArticle)); diff != "" {
				t.Fatalf("Name (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestList_All(t *testing.T) {
	t.Parallel()

	l := NewList(testLanguages)
	if diff := cmp.Diff(testLanguages, l.All()); diff != "" {
		t.Fatalf("All (-want, +got):\n%s", diff)
	}
}

func TestSearchOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		main   string
		recent []string

		expected []string
	}{
		{
			name:     "no languages",
			expected: []string{"eo"},
		},
		{
			name:     "main only",
			main:     "fr",
			expected: []string{"fr", "eo"},
		},
		{
			name:     "main esperanto",
			main:     "eo",
			recent:   []string{"fr", "en", "de"},
			expected: []string{"eo", "fr", "en"},
		},
		{
			name:     "recent languages",
			main:     "fr",
			recent:   []string{"en", "de"},
			expected: []string{"fr", "eo", "en"},
		},
		{
			name:     "recent includes main",
			main:     "fr",
			recent:   []string{"fr", "de"},
			expected: []string{"fr", "eo", "de"},
		},
		{
			name:     "no main with recent",
			recent:   []string{"en", "de", "fr"},
			expected: []string{"eo", "en", "de"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := SearchOrder(test.main, test.recent)
			if diff := cmp.Diff(test.expected, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("SearchOrder (-want, +got):\n%s", diff)
			}
		})
	}
}
