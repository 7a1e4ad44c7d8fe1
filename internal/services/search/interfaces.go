package search

import (
	"context"

	"github.com/killallgit/search-api/internal/services/youtube"
)

// WebSearcher is an opaque web search provider returning result URLs
type WebSearcher interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// VideoSearcher is an opaque video search provider
type VideoSearcher interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]youtube.Video, error)
}

// Delegate is what the HTTP layer needs from the search service
type Delegate interface {
	PersonSearch(ctx context.Context, query string) []string
	VideoSearch(ctx context.Context, query string, limit int) []youtube.Video
}
