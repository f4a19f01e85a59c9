package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTerms(t *testing.T) {
	t.Run("expands shorthands", func(t *testing.T) {
		expanded := ExpandTerms([]string{"js", "developer"})
		assert.Equal(t, []string{"js", "javascript", "developer"}, expanded)
	})

	t.Run("lowercases and dedupes", func(t *testing.T) {
		expanded := ExpandTerms([]string{"K8s", "kubernetes"})
		assert.Equal(t, []string{"k8s", "kubernetes"}, expanded)
	})

	t.Run("preserves first-seen order", func(t *testing.T) {
		expanded := ExpandTerms([]string{"ml", "python"})
		assert.Equal(t, []string{"ml", "machine learning", "python"}, expanded)
	})

	t.Run("no synonyms passes through", func(t *testing.T) {
		expanded := ExpandTerms([]string{"rust", "terraform"})
		assert.Equal(t, []string{"rust", "terraform"}, expanded)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ExpandTerms(nil))
	})
}
