package modrinth

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	// ErrInvalidSlugOrID reports an identifier containing a character
	// outside the ASCII letter, digit, and hyphen set.
	ErrInvalidSlugOrID = errors.New("invalid project id or slug")

	// ErrInvalidSHA1 reports a hash that is not exactly 40 lowercase hex
	// characters.
	ErrInvalidSHA1 = errors.New("invalid SHA-1 hash")

	ErrConfigRequired      = errors.New("config is required")
	ErrAppNameRequired     = errors.New("app name is required")
	ErrTokenRequired       = errors.New("token is required")
	ErrUnsupportedImageExt = errors.New("unsupported image extension")
)

// APIError represents a non-2xx response from the Modrinth API. It carries
// the HTTP status and the raw response body so callers can inspect failures
// the library does not classify.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int `json:"-"`

	// Kind is the machine-readable error name reported by the API.
	Kind string `json:"error"`

	// Description is the human-readable explanation reported by the API.
	Description string `json:"description"`

	// Body is the raw response body.
	Body []byte `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Description, e.Status)
	}

	return fmt.Sprintf("unexpected status %d", e.Status)
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is an API error with status 401. This
// is how a missing or invalid token surfaces on operations that require
// authentication; the library performs no local token precondition check.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsInvalidInput reports whether err is a local validation failure, raised
// before any network request was attempted.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidSlugOrID) || errors.Is(err, ErrInvalidSHA1)
}
