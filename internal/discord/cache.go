package discord

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

// searchCache keeps recent search results so repeated queries (page flips,
// re-running the same search) skip the API round trip. Entries expire on a
// short TTL and the whole cache is purged when the index is rebuilt.
type searchCache struct {
	lru *expirable.LRU[string, []domain.Item]
}

// newSearchCache creates a search cache with the specified size and TTL.
func newSearchCache(size int, ttl time.Duration) *searchCache {
	return &searchCache{
		lru: expirable.NewLRU[string, []domain.Item](size, nil, ttl),
	}
}

func (c *searchCache) Get(query string) ([]domain.Item, bool) {
	return c.lru.Get(strings.ToLower(strings.TrimSpace(query)))
}

func (c *searchCache) Set(query string, items []domain.Item) {
	c.lru.Add(strings.ToLower(strings.TrimSpace(query)), items)
}

// Clear removes all entries from the cache.
func (c *searchCache) Clear() {
	c.lru.Purge()
}
