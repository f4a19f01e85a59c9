package storage

import (
	"testing"

	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeSerialization(t *testing.T) {
	t.Run("round trip with embedding", func(t *testing.T) {
		emp := &core.Employee{
			Id:    "emp001",
			Name:  "Jane Smith",
			Email: "jane.smith@company.com",
			Profile: core.Profile{
				Role:   "Backend Engineer",
				Skills: []string{"Python", "Kafka"},
				Projects: []core.Project{
					{Name: "Event Bus", Description: "streaming", Tech: []string{"Kafka"}},
				},
			},
			RawText:   "Jane Smith is a Backend Engineer.",
			Embedding: []float32{0.1, 0.2, 0.3},
		}

		data, err := MarshalEmployee(emp)
		require.NoError(t, err)

		decoded, err := UnmarshalEmployee(data)
		require.NoError(t, err)
		assert.Equal(t, emp.Id, decoded.Id)
		assert.Equal(t, emp.Profile.Skills, decoded.Profile.Skills)
		assert.Equal(t, emp.Embedding, decoded.Embedding)
	})

	t.Run("embedding survives despite wire exclusion", func(t *testing.T) {
		// core.Employee excludes Embedding from its JSON shape; the storage
		// envelope must carry it anyway.
		emp := &core.Employee{Id: "emp002", Name: "John Doe", Embedding: []float32{1, 2}}

		data, err := MarshalEmployee(emp)
		require.NoError(t, err)
		assert.Contains(t, string(data), "embedding")

		decoded, err := UnmarshalEmployee(data)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2}, decoded.Embedding)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := UnmarshalEmployee([]byte("not json"))
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})

	t.Run("missing employee payload", func(t *testing.T) {
		_, err := UnmarshalEmployee([]byte(`{"embedding":[1]}`))
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})
}
