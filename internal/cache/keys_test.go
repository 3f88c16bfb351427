package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	t.Run("WithoutParams", func(t *testing.T) {
		key := GenerateCacheKey("content", "generation", "abc")
		assert.Equal(t, "quizforge:content:generation:abc", key)
	})

	t.Run("WithParams", func(t *testing.T) {
		key := GenerateCacheKey("content", "generation", "abc", "p1", "p2")
		assert.Equal(t, "quizforge:content:generation:abc:p1_p2", key)
	})
}

func TestGenerationKey(t *testing.T) {
	key := GenerationKey("some document text", 42)

	assert.True(t, strings.HasPrefix(key, GlobalKeyPrefix+":"))
	assert.True(t, strings.HasSuffix(key, ":42"))

	t.Run("StableForSameInput", func(t *testing.T) {
		assert.Equal(t, key, GenerationKey("some document text", 42))
	})

	t.Run("VariesWithSeed", func(t *testing.T) {
		assert.NotEqual(t, key, GenerationKey("some document text", 43))
	})

	t.Run("VariesWithText", func(t *testing.T) {
		assert.NotEqual(t, key, GenerationKey("another document", 42))
	})

	t.Run("BoundedForLongText", func(t *testing.T) {
		long := GenerationKey(strings.Repeat("x", 100000), 42)
		assert.Less(t, len(long), 128)
	})
}
