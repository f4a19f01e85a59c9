package match

import (
	"testing"

	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/stretchr/testify/assert"
)

func testEmployee() *core.Employee {
	return &core.Employee{
		Id:    "emp001",
		Name:  "Jane Smith",
		Email: "jane.smith@company.com",
		Profile: core.Profile{
			Role:       "Backend Engineer",
			Department: "Engineering",
			Skills:     []string{"Python", "Kafka", "PostgreSQL"},
			Tools:      []string{"Grafana"},
			Projects: []core.Project{
				{Name: "Real-time Analytics Dashboard", Description: "Built scalable analytics platform", Tech: []string{"Python", "Kafka"}},
			},
		},
	}
}

func TestSearchBlob(t *testing.T) {
	blob := SearchBlob(testEmployee())

	assert.Contains(t, blob, "jane smith")
	assert.Contains(t, blob, "backend engineer")
	assert.Contains(t, blob, "kafka")
	assert.Contains(t, blob, "grafana")
	assert.Contains(t, blob, "real-time analytics dashboard")
	assert.Contains(t, blob, "scalable analytics")
}

func TestScore(t *testing.T) {
	emp := testEmployee()

	t.Run("phrase and token hits", func(t *testing.T) {
		score, matched := Score("backend engineer", emp)
		// phrase (0.5) + "backend" (0.15) + "engineer" (0.15) + synonym "api"? no
		assert.Greater(t, score, PhraseBonus)
		assert.Contains(t, matched, "backend")
		assert.Contains(t, matched, "engineer")
	})

	t.Run("single token", func(t *testing.T) {
		score, matched := Score("kafka", emp)
		// single term is both the phrase and a token
		assert.InDelta(t, PhraseBonus+TokenBonus, score, 1e-9)
		assert.Equal(t, []string{"kafka"}, matched)
	})

	t.Run("synonym expansion reaches the blob", func(t *testing.T) {
		score, matched := Score("postgres", emp)
		assert.Greater(t, score, 0.0)
		assert.Contains(t, matched, "postgresql")
	})

	t.Run("no match", func(t *testing.T) {
		score, matched := Score("haskell", emp)
		assert.Zero(t, score)
		assert.Empty(t, matched)
	})

	t.Run("empty query", func(t *testing.T) {
		score, matched := Score("   ", emp)
		assert.Zero(t, score)
		assert.Nil(t, matched)
	})

	t.Run("score never exceeds cap", func(t *testing.T) {
		score, _ := Score("jane smith backend engineer python kafka postgresql grafana analytics", emp)
		assert.LessOrEqual(t, score, KeywordCap)
	})
}
