package storage

import (
	"encoding/json"
	"fmt"

	"github.com/piyushtamaskar21/collab-connect/core"
)

// storedEmployee is the persisted representation of an employee record.
// The embedding is excluded from core.Employee's JSON shape (it never goes
// over the API wire), so persistence carries it in a separate field.
type storedEmployee struct {
	Employee  *core.Employee `json:"employee"`
	Embedding []float32      `json:"embedding,omitempty"`
}

// MarshalEmployee serializes an employee record, embedding included.
func MarshalEmployee(employee *core.Employee) ([]byte, error) {
	data, err := json.Marshal(storedEmployee{
		Employee:  employee,
		Embedding: employee.Embedding,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalEmployee deserializes an employee record produced by MarshalEmployee.
func UnmarshalEmployee(data []byte) (*core.Employee, error) {
	var stored storedEmployee
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if stored.Employee == nil {
		return nil, fmt.Errorf("%w: missing employee payload", ErrSerializationFailed)
	}
	stored.Employee.Embedding = stored.Embedding
	return stored.Employee, nil
}
