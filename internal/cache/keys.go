package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "quizforge"

	ServiceContent = "content"
	ObjectTypeGen  = "generation"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// GenerationKey derives the cache key for a seeded generation run. The raw
// text is hashed so arbitrarily long documents produce bounded keys.
func GenerationKey(text string, seed int64) string {
	sum := sha256.Sum256([]byte(text))
	return GenerateCacheKey(
		ServiceContent,
		ObjectTypeGen,
		hex.EncodeToString(sum[:]),
		strconv.FormatInt(seed, 10),
	)
}
