package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/search-api/internal/services/cache"
	"github.com/killallgit/search-api/internal/services/youtube"
	apperrors "github.com/killallgit/search-api/pkg/errors"
)

type mockWebSearcher struct {
	calls      int32
	searchFunc func(ctx context.Context, query string, limit int) ([]string, error)
}

func (m *mockWebSearcher) Name() string { return "web" }

func (m *mockWebSearcher) Search(ctx context.Context, query string, limit int) ([]string, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return nil, nil
}

type mockVideoSearcher struct {
	calls      int32
	searchFunc func(ctx context.Context, query string, limit int) ([]youtube.Video, error)
}

func (m *mockVideoSearcher) Name() string { return "video" }

func (m *mockVideoSearcher) Search(ctx context.Context, query string, limit int) ([]youtube.Video, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return nil, nil
}

func urls(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://example.com/%d", i)
	}
	return out
}

func videos(n int) []youtube.Video {
	out := make([]youtube.Video, n)
	for i := range out {
		out[i] = youtube.Video{ID: fmt.Sprintf("v%d", i), Title: fmt.Sprintf("Video %d", i)}
	}
	return out
}

func TestService_PersonSearch(t *testing.T) {
	tests := []struct {
		name       string
		searchFunc func(ctx context.Context, query string, limit int) ([]string, error)
		expected   []string
	}{
		{
			name: "passes through results",
			searchFunc: func(ctx context.Context, query string, limit int) ([]string, error) {
				assert.Equal(t, PersonSearchLimit, limit)
				return urls(2), nil
			},
			expected: urls(2),
		},
		{
			name: "truncates oversized provider output",
			searchFunc: func(ctx context.Context, query string, limit int) ([]string, error) {
				return urls(10), nil
			},
			expected: urls(PersonSearchLimit),
		},
		{
			name: "provider error becomes empty result",
			searchFunc: func(ctx context.Context, query string, limit int) ([]string, error) {
				return nil, errors.New("connection reset")
			},
			expected: []string{},
		},
		{
			name: "provider panic becomes empty result",
			searchFunc: func(ctx context.Context, query string, limit int) ([]string, error) {
				panic("parser exploded")
			},
			expected: []string{},
		},
		{
			name: "nil result becomes empty slice",
			searchFunc: func(ctx context.Context, query string, limit int) ([]string, error) {
				return nil, nil
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&mockWebSearcher{searchFunc: tt.searchFunc}, nil)
			got := svc.PersonSearch(context.Background(), "Get Wiki URL for Telugu actor Chiranjeevi")
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestService_VideoSearch(t *testing.T) {
	t.Run("respects limit", func(t *testing.T) {
		video := &mockVideoSearcher{
			searchFunc: func(ctx context.Context, query string, limit int) ([]youtube.Video, error) {
				assert.Equal(t, 3, limit)
				return videos(5), nil
			},
		}
		got := NewService(nil, video).VideoSearch(context.Background(), "golang", 3)
		assert.Len(t, got, 3)
	})

	t.Run("error becomes empty result", func(t *testing.T) {
		video := &mockVideoSearcher{
			searchFunc: func(ctx context.Context, query string, limit int) ([]youtube.Video, error) {
				return nil, errors.New("consent wall")
			},
		}
		got := NewService(nil, video).VideoSearch(context.Background(), "golang", 3)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("missing provider", func(t *testing.T) {
		got := NewService(nil, nil).VideoSearch(context.Background(), "golang", 3)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestService_Timeout(t *testing.T) {
	web := &mockWebSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]string, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second):
				return urls(1), nil
			}
		},
	}

	svc := NewService(web, nil, WithTimeout(20*time.Millisecond))

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	start := time.Now()
	got := svc.PersonSearch(ctx, "slow")
	assert.Empty(t, got)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Contains(t, buf.String(), `"error_code":"API_TIMEOUT"`)
}

func TestService_LogsProviderErrorCode(t *testing.T) {
	video := &mockVideoSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]youtube.Video, error) {
			return nil, apperrors.ExternalServiceError("video", errors.New("unexpected status 503"))
		},
	}
	svc := NewService(nil, video)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	got := svc.VideoSearch(ctx, "golang", 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), `"error_code":"EXTERNAL_SERVICE"`)
	assert.Contains(t, buf.String(), `"provider":"video"`)
}

func TestService_Cache(t *testing.T) {
	mc := cache.NewMemoryCache(10, time.Minute)
	defer mc.Stop()

	web := &mockWebSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]string, error) {
			return urls(2), nil
		},
	}
	video := &mockVideoSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]youtube.Video, error) {
			return videos(limit), nil
		},
	}

	svc := NewService(web, video, WithCache(mc, time.Minute))
	ctx := context.Background()

	first := svc.PersonSearch(ctx, "query")
	second := svc.PersonSearch(ctx, "query")
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&web.calls))

	assert.Len(t, svc.VideoSearch(ctx, "golang", 2), 2)
	cached := svc.VideoSearch(ctx, "golang", 2)
	assert.Equal(t, videos(2), cached)
	assert.Len(t, svc.VideoSearch(ctx, "golang", 3), 3)
	assert.Equal(t, int32(2), atomic.LoadInt32(&video.calls))

	stats := svc.CacheStats()
	require.NotNil(t, stats)
	assert.Equal(t, int64(2), stats.Hits)
}

func TestService_CacheSkipsEmptyResults(t *testing.T) {
	mc := cache.NewMemoryCache(10, time.Minute)
	defer mc.Stop()

	web := &mockWebSearcher{
		searchFunc: func(ctx context.Context, query string, limit int) ([]string, error) {
			return nil, errors.New("blocked")
		},
	}

	svc := NewService(web, nil, WithCache(mc, time.Minute))
	svc.PersonSearch(context.Background(), "query")
	svc.PersonSearch(context.Background(), "query")

	assert.Equal(t, int32(2), atomic.LoadInt32(&web.calls))
	assert.Equal(t, 0, mc.Stats().Entries)
}

func TestService_CacheDisabled(t *testing.T) {
	mc := cache.NewMemoryCache(10, time.Minute)
	defer mc.Stop()

	svc := NewService(&mockWebSearcher{}, nil, WithCache(mc, 0))
	assert.Nil(t, svc.CacheStats())
}
