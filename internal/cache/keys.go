package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "talatrivia"

	rankingService = "ranking"
	anyScope       = "all"
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

// RankingVersionKey holds the counter bumped on every score change.
func RankingVersionKey() string {
	return strings.Join([]string{GlobalKeyPrefix, rankingService, "version"}, ":")
}

// RankingKey addresses a cached leaderboard for one filter at one version.
// A zero triviaID or empty userID means "any".
func RankingKey(version int64, triviaID int64, userID string) string {
	trivia := anyScope
	if triviaID != 0 {
		trivia = strconv.FormatInt(triviaID, 10)
	}
	user := anyScope
	if userID != "" {
		user = userID
	}
	return GenerateCacheKey(rankingService, strconv.FormatInt(version, 10), trivia, user)
}
