// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package search provides food search with heuristic relevance ranking.
//
// The Searcher type implements a multi-stage pipeline over external nutrient
// reference providers:
//   - Query normalization toward the canonical main-food-first naming convention
//   - Ordered provider fallback (primary, then secondary on error or empty)
//   - Weighted heuristic relevance scoring against the original query
//   - Verbose-name simplification into short display names
//   - Similarity-based deduplication of the ranked list
//
// Every stage below the orchestrator is a pure function over strings and the
// package's fixed vocabularies, so each can be tested independently.
package search
