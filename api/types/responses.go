package types

import "github.com/killallgit/search-api/internal/services/search"

const (
	// ServiceName is reported by the root and health endpoints
	ServiceName = "Search API"
	// APIVersion is the public API version
	APIVersion = "1.0.0"
)

// Status constants for API responses
const (
	StatusActive  = "active"
	StatusSuccess = "success"
	StatusHealthy = "healthy"
	StatusError   = "error"
)

// InternalErrorMessage is returned for any unexpected server-side failure
const InternalErrorMessage = "An unexpected error occurred. Please try again later."

// SearchResponse is the envelope returned by both search endpoints
type SearchResponse = search.Response

// RootResponse for GET /
type RootResponse struct {
	Message string `json:"message" example:"Hello World"`
	Status  string `json:"status" example:"active"`
	Service string `json:"service" example:"Search API"`
	Version string `json:"version" example:"1.0.0"`
}

// HelloResponse for the greeting endpoint
type HelloResponse struct {
	Message string `json:"message" example:"Hello World"`
	Status  string `json:"status" example:"success"`
}

// DetailResponse carries a single client error message
type DetailResponse struct {
	Detail string `json:"detail" example:"Name cannot be empty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for GET /health
type HealthResponse struct {
	Status    string      `json:"status" example:"healthy"`
	Service   string      `json:"service" example:"Search API"`
	Version   string      `json:"version" example:"1.0.0"`
	Timestamp string      `json:"timestamp"`
	Endpoints []string    `json:"endpoints"`
	Cache     interface{} `json:"cache,omitempty"`
}
