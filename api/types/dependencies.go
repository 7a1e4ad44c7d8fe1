package types

import (
	"github.com/killallgit/search-api/internal/services/cache"
	"github.com/killallgit/search-api/internal/services/search"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Search search.Delegate
}

// CacheStatsProvider is implemented by search delegates that cache results
type CacheStatsProvider interface {
	CacheStats() *cache.CacheStats
}
