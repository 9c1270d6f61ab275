package meteocat

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by NewClient when no API key was provided.
var ErrMissingAPIKey = errors.New("METEOCAT_API_KEY is required")

// APIError is returned when the upstream API answers with a non-2xx status.
// The body is kept as opaque diagnostic text; error responses are never
// parsed as JSON.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Meteocat API error (%d): %s", e.StatusCode, e.Body)
}
