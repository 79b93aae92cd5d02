package dip

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error response from the DIP API.
type APIError struct {
	StatusCode int    `json:"code"    yaml:"code"`
	Title      string `json:"title"   yaml:"title"`
	Detail     string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Title, e.Detail, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Detail, e.StatusCode)
}

// Common static errors that can be wrapped with context.
var (
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrInvalidParameter    = errors.New("invalid query parameter")
	ErrDecode              = errors.New("decoding response body")
	ErrNoMorePages         = errors.New("no more pages")
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrInvalidFormat       = errors.New("invalid response format")
	ErrTypedDecodeMarkup   = errors.New("typed decoding requires the structured (json) format")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an unauthorized error.
// The DIP API rejects missing or expired API keys with 401.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsDecodeError checks if the error came from response body decoding.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// ParseAPIError parses an error body returned by the DIP API. The service
// reports errors as {"code": ..., "message": ...} regardless of the
// requested document format.
func ParseAPIError(statusCode int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	if len(data) > 0 {
		var body struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Title   string `json:"title"`
		}

		if err := json.Unmarshal(data, &body); err == nil {
			apiErr.Detail = body.Message
			apiErr.Title = body.Title
		}
	}

	if apiErr.Detail == "" {
		apiErr.Detail = http.StatusText(statusCode)
	}

	return apiErr
}
