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


package core

import "fmt"

// ValidateEmployee validates an Employee according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Name must not be empty
//   - All projects must pass ValidateProject
//
// NOT validated (populated at load time):
//   - Embedding (can be empty until the embedder runs)
//   - RawText (synthesized from the profile when missing)
func ValidateEmployee(employee *Employee) error {
	if employee == nil {
		return fmt.Errorf("%w: employee is nil", ErrInvalidEmployee)
	}

	if employee.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmployee, ErrEmptyId)
	}

	if employee.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmployee, ErrEmptyName)
	}

	for i := range employee.Profile.Projects {
		if err := ValidateProject(&employee.Profile.Projects[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEmployee, err)
		}
	}

	return nil
}

// ValidateProject validates a Project according to domain rules.
func ValidateProject(project *Project) error {
	if project == nil {
		return fmt.Errorf("%w: project is nil", ErrInvalidProject)
	}

	if project.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProject, ErrEmptyProjectName)
	}

	return nil
}
