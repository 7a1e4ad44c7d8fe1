package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/killallgit/search-api/pkg/errors"
)

func videoRenderer(id, title string) string {
	return fmt.Sprintf(`{"videoRenderer":{
		"videoId":%q,
		"thumbnail":{"thumbnails":[{"url":"https://i.ytimg.com/vi/%s/hq720.jpg","width":360},{"url":"https://i.ytimg.com/vi/%s/hq.jpg","width":720}]},
		"title":{"runs":[{"text":%q}]},
		"longBylineText":{"runs":[{"text":"Go Channel"}]},
		"lengthText":{"simpleText":"12:34"},
		"viewCountText":{"simpleText":"1,024 views"},
		"publishedTimeText":{"simpleText":"3 weeks ago"},
		"descriptionSnippet":{"runs":[{"text":"Learn Go"}]},
		"navigationEndpoint":{"commandMetadata":{"webCommandMetadata":{"url":"/watch?v=%s"}}}
	}}`, id, id, id, title, id)
}

func initialData(items ...string) string {
	contents := ""
	for i, item := range items {
		if i > 0 {
			contents += ","
		}
		contents += item
	}
	return `{"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[` +
		`{"itemSectionRenderer":{"contents":[` + contents + `]}},` +
		`{"continuationItemRenderer":{"trigger":"CONTINUATION_TRIGGER_ON_ITEM_SHOWN"}}` +
		`]}}}}}`
}

func resultsPage(data string) string {
	return `<!DOCTYPE html><html><head><script nonce="x">var ytInitialData = ` + data + `;</script></head><body></body></html>`
}

func TestExtractInitialData(t *testing.T) {
	data := initialData(videoRenderer("abc", "Go tutorial"))

	t.Run("extracts object", func(t *testing.T) {
		got, err := ExtractInitialData(resultsPage(data))
		require.NoError(t, err)
		assert.JSONEq(t, data, got)
	})

	t.Run("window assignment form", func(t *testing.T) {
		got, err := ExtractInitialData(`<script>window["ytInitialData"] = ` + data + `;</script>`)
		require.NoError(t, err)
		assert.JSONEq(t, data, got)
	})

	errorCases := map[string]string{
		"missing marker":   `<html><body>nothing here</body></html>`,
		"unterminated":     `<script>var ytInitialData = {"contents": {}`,
		"invalid json":     `<script>var ytInitialData = {"contents": nope};</script>`,
		"no object marker": `ytInitialData`,
	}
	for name, page := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractInitialData(page)
			assert.Error(t, err)
		})
	}
}

func TestExtractInitialDataBraceInStrings(t *testing.T) {
	data := initialData(videoRenderer("brace1", "x};y"), videoRenderer("brace2", "ends with };"))

	got, err := ExtractInitialData(resultsPage(data) + `<script>var other = {"a":1};</script>`)
	require.NoError(t, err)
	assert.JSONEq(t, data, got)

	videos := ParseVideos(got, 5)
	require.Len(t, videos, 2)
	assert.Equal(t, "x};y", videos[0].Title)
	assert.Equal(t, "ends with };", videos[1].Title)
}

func TestParseVideos(t *testing.T) {
	data := initialData(
		videoRenderer("v1", "First"),
		`{"shelfRenderer":{"title":{"simpleText":"People also watched"}}}`,
		videoRenderer("v2", "Second"),
		videoRenderer("v3", "Third"),
	)

	videos := ParseVideos(data, 10)
	require.Len(t, videos, 3)

	first := videos[0]
	assert.Equal(t, "v1", first.ID)
	assert.Equal(t, "First", first.Title)
	assert.Equal(t, "Go Channel", first.Channel)
	assert.Equal(t, "12:34", first.Duration)
	assert.Equal(t, "1,024 views", first.Views)
	assert.Equal(t, "3 weeks ago", first.PublishTime)
	assert.Equal(t, "Learn Go", first.LongDesc)
	assert.Equal(t, "/watch?v=v1", first.URLSuffix)
	assert.Equal(t, []string{"https://i.ytimg.com/vi/v1/hq720.jpg", "https://i.ytimg.com/vi/v1/hq.jpg"}, first.Thumbnails)

	assert.Len(t, ParseVideos(data, 2), 2)
	assert.Empty(t, ParseVideos(`{"contents":{}}`, 5))
}

func TestParseVideosDefaults(t *testing.T) {
	data := initialData(`{"videoRenderer":{"videoId":"live1","title":{"runs":[{"text":"Live now"}]},
		"detailedMetadataSnippets":[{"snippetText":{"runs":[{"text":"Streaming"}]}}]}}`)

	videos := ParseVideos(data, 5)
	require.Len(t, videos, 1)
	assert.Equal(t, "0", videos[0].Duration)
	assert.Equal(t, "Streaming", videos[0].LongDesc)
	assert.NotNil(t, videos[0].Thumbnails)
}

func TestClient_Search(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/results", r.URL.Path)
		gotQuery = r.URL.Query().Get("search_query")
		_, _ = w.Write([]byte(resultsPage(initialData(
			videoRenderer("a", "A"),
			videoRenderer("b", "B"),
			videoRenderer("c", "C"),
		))))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: time.Second})
	videos, err := client.Search(context.Background(), "golang tutorial", 2)
	require.NoError(t, err)

	assert.Equal(t, "golang tutorial", gotQuery)
	require.Len(t, videos, 2)
	assert.Equal(t, "a", videos[0].ID)
	assert.Equal(t, "b", videos[1].ID)
	assert.Equal(t, "youtube", client.Name())
}

func TestClient_SearchErrors(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		_, err := NewClient(Config{}).Search(context.Background(), "", 3)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetCode(err))
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := NewClient(Config{BaseURL: server.URL}).Search(context.Background(), "q", 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Equal(t, apperrors.ErrCodeExternalService, apperrors.GetCode(err))
	})

	t.Run("page without initial data", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>consent wall</html>"))
		}))
		defer server.Close()

		_, err := NewClient(Config{BaseURL: server.URL}).Search(context.Background(), "q", 3)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeExternalService, apperrors.GetCode(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewClient(Config{BaseURL: "http://127.0.0.1:1"}).Search(ctx, "q", 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, apperrors.ErrCodeExternalService, apperrors.GetCode(err))
	})
}
