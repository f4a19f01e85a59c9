package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Run("identical strings", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("kubernetes", "kubernetes"))
	})

	t.Run("empty strings", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("", ""))
	})

	t.Run("completely different", func(t *testing.T) {
		assert.Less(t, Ratio("abc", "xyz"), 0.1)
	})

	t.Run("single typo over five characters", func(t *testing.T) {
		// one substitution: 1 - 1/5
		assert.InDelta(t, 0.8, Ratio("smith", "smyth"), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, Ratio("jane", "jayne"), Ratio("jayne", "jane"))
	})
}

func TestFuzzyMatch(t *testing.T) {
	t.Run("substring match", func(t *testing.T) {
		assert.True(t, FuzzyMatch("payment", "Payment Gateway Modernization", DefaultFuzzyThreshold))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.True(t, FuzzyMatch("KAFKA", "building kafka pipelines", DefaultFuzzyThreshold))
	})

	t.Run("fuzzy token match", func(t *testing.T) {
		assert.True(t, FuzzyMatch("kuberntes", "deployed on kubernetes", DefaultFuzzyThreshold))
	})

	t.Run("no match", func(t *testing.T) {
		assert.False(t, FuzzyMatch("haskell", "python and java services", DefaultFuzzyThreshold))
	})

	t.Run("empty term never matches", func(t *testing.T) {
		assert.False(t, FuzzyMatch("", "anything", DefaultFuzzyThreshold))
	})
}

func TestLongestCommonSubstring(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"jane", "jayne", 2}, // "ja" and "ne"
		{"smith", "smith", 5},
		{"abc", "xyz", 0},
		{"", "abc", 0},
		{"banana", "ananas", 5}, // "anana"
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, longestCommonSubstring(tt.a, tt.b),
			"lcs(%q, %q)", tt.a, tt.b)
	}
}
