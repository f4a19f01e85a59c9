package collab

import (
	"context"
	"testing"

	"github.com/piyushtamaskar21/collab-connect/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDirectory(t *testing.T) (*Directory, *mock.MockProvider) {
	t.Helper()

	provider := mock.NewMockProvider().(*mock.MockProvider)
	dir, err := OpenDirectory("", WithInMemory(), WithProvider(provider))
	require.NoError(t, err)
	t.Cleanup(func() { dir.Close() })
	return dir, provider
}

func TestDirectorySeed(t *testing.T) {
	dir, _ := openTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, dir.Seed(ctx, 10, 42))

	assert.Equal(t, 10, dir.Engine().Len())

	count, err := dir.EmployeeRepository().CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

func TestDirectoryLoad(t *testing.T) {
	dir, provider := openTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, dir.Seed(ctx, 5, 1))
	seedCalls := provider.GetMockEmbedder().CallCount()
	assert.Positive(t, seedCalls)

	// Reloading from storage reuses the persisted embeddings.
	require.NoError(t, dir.Load(ctx))
	assert.Equal(t, 5, dir.Engine().Len())
	assert.Equal(t, seedCalls, provider.GetMockEmbedder().CallCount())
}

func TestDirectoryLoad_EmptyRoster(t *testing.T) {
	dir, _ := openTestDirectory(t)

	require.NoError(t, dir.Load(context.Background()))
	assert.Zero(t, dir.Engine().Len())
}

func TestDirectorySearch(t *testing.T) {
	dir, _ := openTestDirectory(t)
	ctx := context.Background()

	require.NoError(t, dir.Seed(ctx, 20, 42))

	// Every generated employee carries a role from the fixed pool, so a role
	// keyword always finds someone.
	results := dir.Engine().Search(ctx, "engineer", 5)
	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 5)
}
