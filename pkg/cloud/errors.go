package cloud

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a response the service answered with a non-success
// status. Transport failures (no response at all) are never APIErrors;
// they propagate as wrapped network errors.
type APIError struct {
	// Op is the method and path of the failed call.
	Op string

	// StatusCode is the HTTP status the service returned.
	StatusCode int

	// Message is the service's error text, when it sent one.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: service returned %d: %s", e.Op, e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an APIError, if there is one in the
// chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is the service saying a record does
// not exist.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
