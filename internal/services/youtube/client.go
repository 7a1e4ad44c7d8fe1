package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	apperrors "github.com/killallgit/search-api/pkg/errors"
)

const (
	defaultBaseURL   = "https://www.youtube.com"
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxPageBytes     = 8 << 20

	initialDataMarker = "ytInitialData"
	sectionsPath      = "contents.twoColumnSearchResultsRenderer.primaryContents.sectionListRenderer.contents"
)

// Video is a single YouTube search result
type Video struct {
	ID          string   `json:"id" example:"dQw4w9WgXcQ"`
	Title       string   `json:"title"`
	Channel     string   `json:"channel"`
	Duration    string   `json:"duration" example:"3:33"`
	Views       string   `json:"views" example:"1,234,567 views"`
	PublishTime string   `json:"publish_time" example:"2 years ago"`
	LongDesc    string   `json:"long_desc,omitempty"`
	Thumbnails  []string `json:"thumbnails"`
	URLSuffix   string   `json:"url_suffix" example:"/watch?v=dQw4w9WgXcQ"`
}

// Client scrapes the YouTube search results page
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Config holds configuration for the YouTube client
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a new YouTube search client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
	}
}

// Name identifies the provider in logs and cache keys
func (c *Client) Name() string { return "youtube" }

// Search returns up to limit videos matching query
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Video, error) {
	if query == "" {
		return nil, apperrors.ValidationError("query", "must not be empty")
	}
	if limit <= 0 {
		limit = 10
	}

	endpoint := fmt.Sprintf("%s/results?search_query=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.ExternalServiceError(c.Name(), fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalServiceError(c.Name(), fmt.Errorf("executing request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalServiceError(c.Name(), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, apperrors.ExternalServiceError(c.Name(), fmt.Errorf("reading response: %w", err))
	}

	data, err := ExtractInitialData(string(body))
	if err != nil {
		return nil, apperrors.ExternalServiceError(c.Name(), err)
	}

	return ParseVideos(data, limit), nil
}

// ExtractInitialData cuts the ytInitialData JSON object out of a results page.
// The object ends where the first complete JSON value ends, so string
// contents such as "};" do not truncate it.
func ExtractInitialData(page string) (string, error) {
	idx := strings.Index(page, initialDataMarker)
	if idx < 0 {
		return "", fmt.Errorf("ytInitialData not found in page")
	}

	rest := page[idx+len(initialDataMarker):]
	open := strings.Index(rest, "{")
	if open < 0 {
		return "", fmt.Errorf("ytInitialData has no object")
	}

	var raw json.RawMessage
	if err := json.NewDecoder(strings.NewReader(rest[open:])).Decode(&raw); err != nil {
		return "", fmt.Errorf("ytInitialData is not valid JSON: %w", err)
	}
	return string(raw), nil
}

// ParseVideos collects up to limit videoRenderer entries from ytInitialData
func ParseVideos(data string, limit int) []Video {
	videos := make([]Video, 0, limit)

	gjson.Get(data, sectionsPath).ForEach(func(_, section gjson.Result) bool {
		section.Get("itemSectionRenderer.contents").ForEach(func(_, item gjson.Result) bool {
			renderer := item.Get("videoRenderer")
			if !renderer.Exists() {
				return true
			}
			videos = append(videos, videoFromRenderer(renderer))
			return len(videos) < limit
		})
		return len(videos) < limit
	})

	return videos
}

func videoFromRenderer(r gjson.Result) Video {
	thumbnails := make([]string, 0)
	r.Get("thumbnail.thumbnails.#.url").ForEach(func(_, u gjson.Result) bool {
		thumbnails = append(thumbnails, u.String())
		return true
	})

	desc := r.Get("descriptionSnippet.runs.0.text").String()
	if desc == "" {
		desc = r.Get("detailedMetadataSnippets.0.snippetText.runs.0.text").String()
	}

	duration := r.Get("lengthText.simpleText").String()
	if duration == "" {
		duration = "0"
	}

	return Video{
		ID:          r.Get("videoId").String(),
		Title:       r.Get("title.runs.0.text").String(),
		Channel:     r.Get("longBylineText.runs.0.text").String(),
		Duration:    duration,
		Views:       r.Get("viewCountText.simpleText").String(),
		PublishTime: r.Get("publishedTimeText.simpleText").String(),
		LongDesc:    desc,
		Thumbnails:  thumbnails,
		URLSuffix:   r.Get("navigationEndpoint.commandMetadata.webCommandMetadata.url").String(),
	}
}
