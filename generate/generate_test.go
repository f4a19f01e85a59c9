package generate

import (
	"regexp"
	"strings"
	"testing"

	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_Deterministic(t *testing.T) {
	first := Roster(10, 42)
	second := Roster(10, 42)

	require.Len(t, first, 10)
	require.Len(t, second, 10)
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Email, second[i].Email)
		assert.Equal(t, first[i].Profile.Skills, second[i].Profile.Skills)
		assert.Equal(t, first[i].RawText, second[i].RawText)
	}
}

func TestRoster_SeedVariation(t *testing.T) {
	a := Roster(10, 1)
	b := Roster(10, 2)

	same := 0
	for i := range a {
		if a[i].Name == b[i].Name {
			same++
		}
	}
	assert.Less(t, same, len(a))
}

func TestRoster_Shape(t *testing.T) {
	roster := Roster(30, 1)
	require.Len(t, roster, 30)

	idPattern := regexp.MustCompile(`^emp\d{3}$`)
	emailPattern := regexp.MustCompile(`^[a-z.]+\.\d+@company\.com$`)

	for _, emp := range roster {
		assert.Regexp(t, idPattern, emp.Id)
		assert.Regexp(t, emailPattern, emp.Email)
		assert.NoError(t, core.ValidateEmployee(emp))

		assert.GreaterOrEqual(t, len(emp.Profile.Skills), 6)
		assert.LessOrEqual(t, len(emp.Profile.Skills), 12)
		assert.Len(t, emp.Profile.PrimarySkills, 4)
		assert.NotEmpty(t, emp.Profile.Tools)
		assert.NotEmpty(t, emp.Profile.Projects)
		for _, project := range emp.Profile.Projects {
			assert.NotEmpty(t, project.Name)
			assert.NotEmpty(t, project.Tech)
		}

		assert.NotEmpty(t, emp.RawText)
		assert.True(t, strings.HasPrefix(emp.RawText, emp.Name))
	}
}

func TestRoster_UniqueIds(t *testing.T) {
	roster := Roster(50, 7)

	seen := make(map[string]bool, len(roster))
	for _, emp := range roster {
		assert.False(t, seen[emp.Id], "duplicate id %s", emp.Id)
		seen[emp.Id] = true
	}
}

func TestRoster_Empty(t *testing.T) {
	assert.Empty(t, Roster(0, 1))
}
