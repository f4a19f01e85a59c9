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


package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/piyushtamaskar21/collab-connect/core"
	"github.com/piyushtamaskar21/collab-connect/storage"
)

// EmployeeRepository implements storage.EmployeeRepository for BadgerDB.
type EmployeeRepository struct {
	backend *Backend
}

var _ storage.EmployeeRepository = (*EmployeeRepository)(nil)

// newEmployeeRepository is an internal constructor that returns the concrete type.
func newEmployeeRepository(backend *Backend) (*EmployeeRepository, error) {
	return &EmployeeRepository{backend: backend}, nil
}

// NewEmployeeRepository creates a new employee repository on the given backend.
//
// Returns storage.EmployeeRepository interface to enforce abstraction.
func NewEmployeeRepository(backend *Backend) (storage.EmployeeRepository, error) {
	return newEmployeeRepository(backend)
}

// Close releases resources held by the repository.
// The backend itself is closed separately by its owner.
func (r *EmployeeRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *EmployeeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutEmployees stores one or more employees, overwriting existing records.
func (r *EmployeeRepository) PutEmployees(ctx context.Context, employees ...*core.Employee) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, employee := range employees {
			if err := core.ValidateEmployee(employee); err != nil {
				return err
			}

			value, err := storage.MarshalEmployee(employee)
			if err != nil {
				return err
			}
			if err := tx.Set(makeEmployeeKey(employee.Id), value); err != nil {
				return err
			}

			// Update email lookup index
			if employee.Email != "" {
				if err := tx.Set(makeEmailKey(employee.Email), []byte(employee.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// GetEmployee retrieves a single employee by ID.
func (r *EmployeeRepository) GetEmployee(ctx context.Context, id string) (*core.Employee, error) {
	var employee *core.Employee

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		employee, err = r.readEmployee(tx, makeEmployeeKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, storage.ErrNotFound
	}
	return employee, nil
}

// GetEmployeeByEmail retrieves a single employee by email address.
// Returns storage.ErrNotFound if no employee has the given email.
func (r *EmployeeRepository) GetEmployeeByEmail(ctx context.Context, email string) (*core.Employee, error) {
	var employee *core.Employee

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmailKey(email))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}

		employee, err = r.readEmployee(tx, makeEmployeeKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, storage.ErrNotFound
	}
	return employee, nil
}

// ListEmployees retrieves all employees in the roster.
func (r *EmployeeRepository) ListEmployees(ctx context.Context) ([]*core.Employee, error) {
	employees := []*core.Employee{}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(employeeRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			err := item.Value(func(val []byte) error {
				employee, err := storage.UnmarshalEmployee(val)
				if err != nil {
					return err
				}
				employees = append(employees, employee)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// DeleteEmployees removes employees by their IDs.
func (r *EmployeeRepository) DeleteEmployees(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeEmployeeKey(id)

			// Read the record first to clean up the email index
			employee, err := r.readEmployee(tx, key)
			if err != nil {
				return err
			}
			if employee == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
			if employee.Email != "" {
				if err := tx.Delete(makeEmailKey(employee.Email)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// CountEmployees returns the number of employees in the roster.
func (r *EmployeeRepository) CountEmployees(ctx context.Context) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(employeeRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// readEmployee reads and deserializes an employee record.
// Returns nil (no error) when the key does not exist.
func (r *EmployeeRepository) readEmployee(tx *badger.Txn, key []byte) (*core.Employee, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var employee *core.Employee
	err = item.Value(func(val []byte) error {
		var err error
		employee, err = storage.UnmarshalEmployee(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}
