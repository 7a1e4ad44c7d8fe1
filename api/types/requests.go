package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// DefaultNumResults is used when a video search omits num_results
const DefaultNumResults = 3

// ActorSearchRequest represents a person Wikipedia URL lookup
type ActorSearchRequest struct {
	Name  string `json:"name" validate:"required,max=100" example:"Chiranjeevi"`
	Craft string `json:"craft" validate:"required,max=50" example:"actor"`
}

// Normalize trims the request fields
func (r *ActorSearchRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Craft = strings.TrimSpace(r.Craft)
}

// SearchQuery represents a YouTube video search
type SearchQuery struct {
	SearchText string       `json:"search_text" validate:"required,max=200" example:"FastAPI tutorial"`
	NumResults *ResultCount `json:"num_results,omitempty" swaggertype:"integer" validate:"min=1,max=50" example:"3" minimum:"1" maximum:"50" default:"3"`
}

// ResultCount is a requested number of results. It accepts JSON numbers
// with no fractional part, so 3 and 3.0 both decode to 3. Range checks are
// left to validation.
type ResultCount int

// UnmarshalJSON implements json.Unmarshaler
func (n *ResultCount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("num_results must be a number: %w", err)
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("num_results must be a whole number, got %v", f)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return fmt.Errorf("num_results is out of range: %v", f)
	}
	*n = ResultCount(f)
	return nil
}

// Normalize trims the search text and applies the default result count
func (q *SearchQuery) Normalize() {
	q.SearchText = strings.TrimSpace(q.SearchText)
	if q.NumResults == nil {
		n := ResultCount(DefaultNumResults)
		q.NumResults = &n
	}
}

// Limit returns the requested number of results
func (q *SearchQuery) Limit() int {
	if q.NumResults == nil {
		return DefaultNumResults
	}
	return int(*q.NumResults)
}
