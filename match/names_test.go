package match

import (
	"testing"

	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedEmployee(id, name, email string) *core.Employee {
	return &core.Employee{Id: id, Name: name, Email: email}
}

func TestLooksLikeName(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"John Doe", true},
		{"Jane", true},
		{"Mary Jane Watson", true},
		{"john doe", false},           // lowercase
		{"Java Developer", false},     // technical keyword
		{"Senior Engineer", false},    // technical keywords
		{"python", false},             // lowercase + keyword
		{"A B C D", false},            // too many tokens
		{"Kafka", false},              // keyword even capitalized
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeName(tt.query), "query %q", tt.query)
		})
	}
}

func TestRankByName(t *testing.T) {
	population := []*core.Employee{
		namedEmployee("emp001", "Jane Smith", "jane.smith.42@company.com"),
		namedEmployee("emp002", "John Doe", "john.doe.7@company.com"),
		namedEmployee("emp003", "Janet Smithson", "janet.smithson.9@company.com"),
		namedEmployee("emp004", "Bob Brown", "bob.brown.3@company.com"),
	}

	t.Run("exact match ranks first with full score", func(t *testing.T) {
		results := RankByName("Jane Smith", population, 10)
		require.NotEmpty(t, results)
		assert.Equal(t, "emp001", results[0].Employee.Id)
		assert.Equal(t, 1.0, results[0].Score)
	})

	t.Run("substring match scores 0.8", func(t *testing.T) {
		results := RankByName("Janet", population, 10)
		require.NotEmpty(t, results)
		assert.Equal(t, "emp003", results[0].Employee.Id)
		assert.Equal(t, 0.8, results[0].Score)
	})

	t.Run("fuzzy match on misspelled name", func(t *testing.T) {
		results := RankByName("Jane Smyth", population, 10)
		require.NotEmpty(t, results)
		assert.Equal(t, "emp001", results[0].Employee.Id)
		// fuzzy hits sort below exact and substring hits
		assert.Less(t, results[0].Score, 1.0)
		assert.Greater(t, results[0].Score, 0.4)
	})

	t.Run("unrelated names are dropped", func(t *testing.T) {
		results := RankByName("Jane Smith", population, 10)
		for _, result := range results {
			assert.NotEqual(t, "emp004", result.Employee.Id)
		}
	})

	t.Run("email local part raises the score", func(t *testing.T) {
		// "jane.smith.42" contains "jane" -> partial email floor
		results := RankByName("Jane", population, 10)
		require.NotEmpty(t, results)
		assert.Equal(t, "emp001", results[0].Employee.Id)
		assert.GreaterOrEqual(t, results[0].Score, 0.7)
	})

	t.Run("topK caps results", func(t *testing.T) {
		results := RankByName("Jane", population, 1)
		assert.Len(t, results, 1)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Nil(t, RankByName("  ", population, 10))
	})

	t.Run("every result carries a reason", func(t *testing.T) {
		results := RankByName("Jane Smith", population, 10)
		for _, result := range results {
			assert.NotEmpty(t, result.Reasons)
		}
	})
}

func TestRoute(t *testing.T) {
	t.Run("name-shaped query", func(t *testing.T) {
		assert.Equal(t, ModeName, Route("John Doe"))
	})

	t.Run("skill query", func(t *testing.T) {
		assert.Equal(t, ModeSearch, Route("java developer"))
	})

	t.Run("capitalized technical query", func(t *testing.T) {
		assert.Equal(t, ModeSearch, Route("Python Kafka"))
	})

	t.Run("mode names", func(t *testing.T) {
		assert.Equal(t, "name", ModeName.String())
		assert.Equal(t, "search", ModeSearch.String())
	})
}
