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


// Package engine orchestrates employee matching over a loaded population.
//
// The Engine type owns the employee snapshot and its similarity index behind
// a read-write mutex: LoadEmployees swaps in a new snapshot exclusively while
// every query operation reads a consistent view. On top of the snapshot it
// composes three query surfaces:
//
//   - FindSimilar: cosine ranking against a known roster member
//   - Search: routed name lookup or hybrid keyword+semantic ranking
//   - Recommend: resume-driven semantic matching with per-candidate
//     detailed comparisons
//
// Provider failures never surface as hard errors from query operations.
// Embedding failures degrade to keyword-only evidence and generation
// failures fall back to deterministic summaries, so the result shape is
// identical whether or not the external AI services are reachable.
package engine
