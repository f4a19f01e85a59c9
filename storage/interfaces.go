package storage

import (
	"context"

	"github.com/piyushtamaskar21/collab-connect/core"
)

// Note: employees are keyed by their string Id (e.g. "emp-001"), which is
// stable across re-seeds of the same roster.

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// EmployeeRepository provides operations for managing employee records.
type EmployeeRepository interface {
	Repository

	// PutEmployees stores one or more employees, overwriting existing records
	// with the same ID. Embeddings are persisted alongside the record so a
	// restart does not require re-embedding the whole roster.
	PutEmployees(ctx context.Context, employees ...*core.Employee) error

	// GetEmployee retrieves a single employee by ID.
	// Returns ErrNotFound if the employee doesn't exist.
	GetEmployee(ctx context.Context, id string) (*core.Employee, error)

	// ListEmployees retrieves all employees in the roster.
	// Returns an empty slice when the roster is empty.
	ListEmployees(ctx context.Context) ([]*core.Employee, error)

	// DeleteEmployees removes employees by their IDs.
	// Returns ErrNotFound if any employee doesn't exist.
	DeleteEmployees(ctx context.Context, ids ...string) error

	// CountEmployees returns the number of employees in the roster.
	CountEmployees(ctx context.Context) (int, error)
}
