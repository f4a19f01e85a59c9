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


// Package collab ties the roster store, the AI provider, and the matching
// engine together into one openable directory.
package collab

import (
	"context"
	"log/slog"

	"github.com/piyushtamaskar21/collab-connect/ai"
	"github.com/piyushtamaskar21/collab-connect/ai/openai"
	"github.com/piyushtamaskar21/collab-connect/engine"
	"github.com/piyushtamaskar21/collab-connect/generate"
	"github.com/piyushtamaskar21/collab-connect/storage"
	"github.com/piyushtamaskar21/collab-connect/storage/badger"
)

// Directory is the top-level facade: an employee roster persisted in
// BadgerDB plus a matching engine over it.
type Directory struct {
	backend  *badger.Backend
	repo     storage.EmployeeRepository
	provider ai.AIProvider
	engine   *engine.Engine
	logger   *slog.Logger
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*directoryOptions)

type directoryOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the AI provider configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) DirectoryOption {
	return func(o *directoryOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI
// construction. Mainly for tests.
func WithProvider(provider ai.AIProvider) DirectoryOption {
	return func(o *directoryOptions) {
		o.provider = provider
	}
}

// WithInMemory opens the roster store in memory instead of on disk.
func WithInMemory() DirectoryOption {
	return func(o *directoryOptions) {
		o.inMemory = true
	}
}

// OpenDirectory opens (or creates) a directory at the given path.
// The engine starts empty; call Load or Seed to populate it.
func OpenDirectory(filePath string, opts ...DirectoryOption) (*Directory, error) {
	// Apply options
	options := &directoryOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create employee repository
	repo, err := badger.NewEmployeeRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
	}

	eng, err := engine.New(provider)
	if err != nil {
		provider.Close()
		repo.Close()
		backend.Close()
		return nil, err
	}

	return &Directory{
		backend:  backend,
		repo:     repo,
		provider: provider,
		engine:   eng,
		logger:   slog.Default(),
	}, nil
}

// Close releases all resources in dependency order.
func (d *Directory) Close() error {
	if err := d.engine.Close(); err != nil {
		d.logger.Error("error closing engine", "err", err)
	}
	if err := d.provider.Close(); err != nil {
		d.logger.Error("error closing AI provider", "err", err)
	}
	if err := d.repo.Close(); err != nil {
		d.logger.Error("error closing employee repository", "err", err)
		return err
	}
	if err := d.backend.Close(); err != nil {
		d.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Engine returns the matching engine.
func (d *Directory) Engine() *engine.Engine {
	return d.engine
}

// EmployeeRepository returns the roster store.
func (d *Directory) EmployeeRepository() storage.EmployeeRepository {
	return d.repo
}

// Load populates the engine from the persisted roster. Employees that were
// stored with embeddings are not re-embedded.
func (d *Directory) Load(ctx context.Context) error {
	employees, err := d.repo.ListEmployees(ctx)
	if err != nil {
		return err
	}
	return d.engine.LoadEmployees(ctx, employees)
}

// Seed generates a synthetic roster, loads it into the engine (computing
// embeddings), and persists it with embeddings included.
func (d *Directory) Seed(ctx context.Context, count int, seed int64) error {
	employees := generate.Roster(count, seed)

	if err := d.engine.LoadEmployees(ctx, employees); err != nil {
		return err
	}
	if err := d.repo.PutEmployees(ctx, employees...); err != nil {
		return err
	}

	d.logger.Info("seeded roster", "employees", len(employees))
	return nil
}
