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


package index

import (
	"math"
	"sort"

	"github.com/piyushtamaskar21/collab-connect/core"
)

// Unrankable is the similarity assigned to any pair involving a zero-norm
// vector. It sorts below every real cosine value, so entities without a
// usable embedding never appear similar to anything.
var Unrankable = math.Inf(-1)

// Hit is a single ranked entry: an employee and its cosine similarity to
// the query vector.
type Hit struct {
	Employee   *core.Employee
	Similarity float64
}

// Index is a matrix-backed cosine similarity index over a fixed employee
// snapshot. It is immutable after Build and safe for concurrent reads.
type Index struct {
	employees []*core.Employee
	rows      [][]float32
	norms     []float64
}

// Build constructs an index from an ordered employee snapshot. Employees
// without a usable embedding still occupy a row (to keep positions aligned)
// but are marked unrankable. If no employee carries a valid embedding the
// result is an empty index, not an error.
func Build(employees []*core.Employee) *Index {
	idx := &Index{
		employees: employees,
		rows:      make([][]float32, len(employees)),
		norms:     make([]float64, len(employees)),
	}

	valid := 0
	for i, emp := range employees {
		idx.rows[i] = emp.Embedding
		idx.norms[i] = norm(emp.Embedding)
		if idx.norms[i] > 0 {
			valid++
		}
	}

	if valid == 0 {
		return &Index{}
	}
	return idx
}

// Len returns the number of rows in the index.
func (idx *Index) Len() int {
	return len(idx.rows)
}

// Rank scores every employee against the query vector and returns them in
// descending similarity order. Ties keep the original insertion order, so
// repeated calls over the same snapshot are deterministic. Employees (or a
// query) with zero norm receive the Unrankable similarity. When excludeId is
// non-empty, that single employee is removed from the output; the scores of
// the others are unaffected.
func (idx *Index) Rank(query []float32, excludeId string) []Hit {
	if len(idx.rows) == 0 {
		return nil
	}

	queryNorm := norm(query)

	hits := make([]Hit, 0, len(idx.rows))
	for i, emp := range idx.employees {
		if excludeId != "" && emp.Id == excludeId {
			continue
		}
		hits = append(hits, Hit{
			Employee:   emp,
			Similarity: similarity(query, queryNorm, idx.rows[i], idx.norms[i]),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	return hits
}

// Cosine computes the cosine similarity between two vectors. Any pair
// involving a zero-norm or mismatched-length vector is Unrankable.
func Cosine(a, b []float32) float64 {
	return similarity(a, norm(a), b, norm(b))
}

func similarity(a []float32, normA float64, b []float32, normB float64) float64 {
	if normA == 0 || normB == 0 || len(a) != len(b) {
		return Unrankable
	}

	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (normA * normB)
}

func norm(v []float32) float64 {
	var sum float64
	for _, val := range v {
		sum += float64(val) * float64(val)
	}
	return math.Sqrt(sum)
}
