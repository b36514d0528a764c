package airtable

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record lookup matches nothing.
var ErrNotFound = errors.New("airtable: record not found")

// APIError is a non-2xx response from the Airtable REST API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type == "" && e.Message == "" {
		return fmt.Sprintf("airtable: status %d", e.StatusCode)
	}
	return fmt.Sprintf("airtable: status %d: %s %s", e.StatusCode, e.Type, e.Message)
}

// IsAuthError reports whether err is an Airtable 401/403.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}
