package reason

import (
	"testing"

	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employee(id string, mutate func(*core.Employee)) *core.Employee {
	emp := &core.Employee{
		Id:   id,
		Name: "Employee " + id,
		Profile: core.Profile{
			Role:       "Software Engineer",
			Department: "Engineering",
			Seniority:  "Senior",
		},
	}
	if mutate != nil {
		mutate(emp)
	}
	return emp
}

func TestExplain(t *testing.T) {
	t.Run("shared projects take precedence", func(t *testing.T) {
		a := employee("a", func(e *core.Employee) {
			e.Profile.Projects = []core.Project{{Name: "Payment Gateway Modernization", Description: "payments"}}
		})
		b := employee("b", func(e *core.Employee) {
			e.Profile.Projects = []core.Project{{Name: "Payment Gateway Modernization", Description: "payments"}}
		})

		reasons := Explain(a, b)
		require.NotEmpty(t, reasons)
		assert.Contains(t, reasons[0], "Shared project experience")
		assert.Contains(t, reasons[0], "Payment Gateway Modernization")
	})

	t.Run("skill alignment needs at least two shared skills", func(t *testing.T) {
		a := employee("a", func(e *core.Employee) {
			e.Profile.Skills = []string{"Python", "Kafka", "Redis"}
		})
		oneShared := employee("b", func(e *core.Employee) {
			e.Profile.Skills = []string{"Python", "Rust"}
			e.Profile.Department = "Data"
		})
		twoShared := employee("c", func(e *core.Employee) {
			e.Profile.Skills = []string{"Python", "Kafka"}
		})

		for _, reason := range Explain(a, oneShared) {
			assert.NotContains(t, reason, "Strong alignment")
		}
		reasons := Explain(a, twoShared)
		require.NotEmpty(t, reasons)
		assert.Contains(t, reasons[0], "Strong alignment on Python, Kafka")
	})

	t.Run("domain overlap", func(t *testing.T) {
		a := employee("a", func(e *core.Employee) {
			e.Profile.Department = "Data"
			e.Profile.Projects = []core.Project{{Name: "ETL Revamp", Description: "data pipeline work"}}
		})
		b := employee("b", func(e *core.Employee) {
			e.Profile.Department = "Product"
			e.Profile.Projects = []core.Project{{Name: "Analytics Platform", Description: "streaming data analytics"}}
		})

		reasons := Explain(a, b)
		require.NotEmpty(t, reasons)
		assert.Contains(t, reasons[0], "Data projects")
	})

	t.Run("department fallback", func(t *testing.T) {
		a := employee("a", nil)
		b := employee("b", nil)

		reasons := Explain(a, b)
		assert.Equal(t, []string{"Both working in Engineering"}, reasons)
	})

	t.Run("never empty", func(t *testing.T) {
		a := employee("a", func(e *core.Employee) { e.Profile.Department = "Design" })
		b := employee("b", func(e *core.Employee) { e.Profile.Department = "Data" })

		reasons := Explain(a, b)
		assert.Equal(t, []string{"Complementary background and diverse perspective"}, reasons)
	})

	t.Run("capped at three reasons", func(t *testing.T) {
		mutate := func(e *core.Employee) {
			e.Profile.Skills = []string{"Python", "Kafka"}
			e.Profile.Projects = []core.Project{
				{Name: "Payment Gateway Modernization", Description: "backend api payments"},
				{Name: "Real-time Analytics Dashboard", Description: "data analytics react dashboard"},
			}
		}
		a := employee("a", mutate)
		b := employee("b", mutate)

		reasons := Explain(a, b)
		assert.LessOrEqual(t, len(reasons), 3)
	})
}

func TestExplainQuery(t *testing.T) {
	emp := employee("a", func(e *core.Employee) {
		e.Profile.Role = "Backend Engineer"
		e.Profile.Skills = []string{"Python", "Kafka"}
		e.Profile.Tools = []string{"Grafana"}
		e.Profile.Projects = []core.Project{{Name: "Kafka Migration", Description: ""}}
	})

	t.Run("skill hit", func(t *testing.T) {
		reasons := ExplainQuery(emp, []string{"python"})
		assert.Contains(t, reasons, "Skilled in Python")
	})

	t.Run("tool hit", func(t *testing.T) {
		reasons := ExplainQuery(emp, []string{"grafana"})
		assert.Contains(t, reasons, "Works with Grafana")
	})

	t.Run("role hit", func(t *testing.T) {
		reasons := ExplainQuery(emp, []string{"backend"})
		assert.Contains(t, reasons, "Role: Backend Engineer")
	})

	t.Run("deduplicated and capped", func(t *testing.T) {
		reasons := ExplainQuery(emp, []string{"kafka", "kafka", "python", "grafana", "backend"})
		assert.LessOrEqual(t, len(reasons), 3)
	})

	t.Run("semantic-only fallback", func(t *testing.T) {
		reasons := ExplainQuery(emp, []string{"haskell"})
		assert.Equal(t, []string{"Profile is semantically related to the query"}, reasons)
	})
}

func TestSharedSkills(t *testing.T) {
	a := employee("a", func(e *core.Employee) {
		e.Profile.Skills = []string{"Python", "Kafka", "Redis"}
	})
	b := employee("b", func(e *core.Employee) {
		e.Profile.Skills = []string{"kafka", "PYTHON"}
	})

	// case-insensitive intersection, target order and casing preserved
	assert.Equal(t, []string{"Python", "Kafka"}, SharedSkills(a, b))
}
