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

// Package revo implements prefix lookup of headwords in ReVo dictionary
// indexes.
//
// Each supported language has its own index mapping headwords to the ids of
// the dictionary articles defining them. A [Searcher] normalizes a query and
// searches a list of languages in order, returning the results of the first
// language that has any.
//
// Index files are read by the [trie] package, provided by the [source]
// package, and kept in memory by the [cache] package.
package revo
