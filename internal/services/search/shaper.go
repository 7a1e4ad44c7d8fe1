package search

import (
	"fmt"

	"github.com/killallgit/search-api/internal/services/youtube"
)

// PersonResultLimit caps the URLs returned to clients of the person search
const PersonResultLimit = 3

// Response is the envelope returned by both search endpoints.
// Status is false exactly when Data is empty.
type Response struct {
	Status  bool          `json:"status" example:"true"`
	Data    []interface{} `json:"data"`
	Message string        `json:"message,omitempty" example:"Found 3 result(s)"`
}

// PersonQuery builds the web search query for a person and their craft
func PersonQuery(name, craft string) string {
	return fmt.Sprintf("Get Wiki URL for Telugu %s %s", craft, name)
}

// ShapePersonResults wraps at most PersonResultLimit URLs in the envelope
func ShapePersonResults(urls []string) Response {
	if len(urls) > PersonResultLimit {
		urls = urls[:PersonResultLimit]
	}

	data := make([]interface{}, 0, len(urls))
	for _, u := range urls {
		data = append(data, u)
	}

	if len(data) == 0 {
		return Response{
			Status:  false,
			Data:    data,
			Message: "No results found for the given person",
		}
	}

	return Response{
		Status:  true,
		Data:    data,
		Message: fmt.Sprintf("Found %d result(s)", len(data)),
	}
}

// ShapeVideoResults wraps videos in the envelope with a counted message
func ShapeVideoResults(query string, videos []youtube.Video) Response {
	data := make([]interface{}, 0, len(videos))
	for _, v := range videos {
		data = append(data, v)
	}

	if len(data) == 0 {
		return Response{
			Status:  false,
			Data:    data,
			Message: fmt.Sprintf("No videos found for '%s'", query),
		}
	}

	return Response{
		Status:  true,
		Data:    data,
		Message: fmt.Sprintf("Found %d video(s) for '%s'", len(data), query),
	}
}
