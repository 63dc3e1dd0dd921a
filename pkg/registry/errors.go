package registry

import (
	"errors"
	"fmt"
)

// APIError is a non-success response from the registry. Either endpoint
// failing is fatal for the run; there is no retry or partial submission.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("registry %s returned status %d", e.Endpoint, e.StatusCode)
}

func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
