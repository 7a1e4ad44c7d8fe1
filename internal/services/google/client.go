package google

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	apperrors "github.com/killallgit/search-api/pkg/errors"
)

const (
	defaultBaseURL   = "https://www.google.com"
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxResults       = 100
)

// resultSelectors are the containers Google wraps organic results in across
// its desktop and basic HTML layouts.
const resultSelectors = "div.g, div.ezO2md, div.Gx5Zad, div.MjjYud"

// Client scrapes Google web search result pages
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	language   string
}

// Config holds configuration for the Google client
type Config struct {
	BaseURL   string
	UserAgent string
	Language  string
	Timeout   time.Duration
}

// NewClient creates a new Google search client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		language:   cfg.Language,
	}
}

// Name identifies the provider in logs and cache keys
func (c *Client) Name() string { return "google" }

// Search returns up to limit result URLs for query
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if query == "" {
		return nil, apperrors.ValidationError("query", "must not be empty")
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > maxResults {
		limit = maxResults
	}

	params := url.Values{}
	params.Set("q", query)
	// Ask for a couple more than needed since ads and duplicates are dropped
	params.Set("num", strconv.Itoa(limit+2))
	params.Set("hl", c.language)

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.ExternalServiceError(c.Name(), fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")
	req.Header.Set("Accept-Language", c.language)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalServiceError(c.Name(), fmt.Errorf("executing request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalServiceError(c.Name(), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, apperrors.ExternalServiceError(c.Name(), fmt.Errorf("parsing response: %w", err))
	}

	return ParseResults(doc, limit), nil
}

// ParseResults extracts unique organic result URLs from a Google result page
func ParseResults(doc *goquery.Document, limit int) []string {
	scope := doc.Find(resultSelectors)
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	seen := make(map[string]struct{})
	results := make([]string, 0, limit)

	scope.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		link := unwrapURL(href)
		if link == "" {
			return true
		}
		if _, dup := seen[link]; dup {
			return true
		}
		seen[link] = struct{}{}
		results = append(results, link)
		return len(results) < limit
	})

	return results
}

// unwrapURL resolves Google's /url?q= redirect wrapper and filters out
// links that point back at Google itself.
func unwrapURL(href string) string {
	if strings.HasPrefix(href, "/url?") {
		u, err := url.Parse(href)
		if err != nil {
			return ""
		}
		target := u.Query().Get("q")
		if target == "" {
			target = u.Query().Get("url")
		}
		href = target
	}

	if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil || u.Host == "" {
		return ""
	}
	if isGoogleHost(u.Hostname()) {
		return ""
	}
	return href
}

func isGoogleHost(host string) bool {
	host = strings.ToLower(host)
	return host == "google.com" ||
		strings.HasSuffix(host, ".google.com") ||
		strings.Contains(host, ".google.") ||
		strings.HasPrefix(host, "google.") ||
		strings.HasSuffix(host, ".googleusercontent.com") ||
		strings.HasSuffix(host, ".gstatic.com")
}
