package cache

import (
	"fmt"
	"time"
)

// GlobalFeedKey caches the rendered first page of the global feed. It must
// be invalidated on every post create, edit or delete so readers never see
// stale content longer than one write cycle.
const GlobalFeedKey = "feed:global"

// DefaultFeedTTL bounds staleness for cached feed pages when no TTL is
// configured.
const DefaultFeedTTL = 20 * time.Second

// GroupFeedKey returns the cache key for a group's feed page.
func GroupFeedKey(slug string) string {
	return fmt.Sprintf("feed:group:%s", slug)
}

// ProfileKey returns the cache key for a user's profile page.
func ProfileKey(username string) string {
	return fmt.Sprintf("profile:%s", username)
}
