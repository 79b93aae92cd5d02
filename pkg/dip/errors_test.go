package dip_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bundestag-io/dip-client/pkg/dip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	withTitle := &dip.APIError{StatusCode: 404, Title: "Not Found", Detail: "Dokument nicht gefunden"}
	assert.Equal(t, "Not Found: Dokument nicht gefunden (status: 404)", withTitle.Error())

	withoutTitle := &dip.APIError{StatusCode: 401, Detail: "An API key is required"}
	assert.Equal(t, "An API key is required (status: 401)", withoutTitle.Error())
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	notFound := &dip.APIError{StatusCode: http.StatusNotFound, Detail: "missing"}
	assert.True(t, dip.IsNotFound(notFound))
	assert.True(t, dip.IsNotFound(fmt.Errorf("fetching document: %w", notFound)))

	unauthorized := &dip.APIError{StatusCode: http.StatusUnauthorized}
	assert.False(t, dip.IsNotFound(unauthorized))
	assert.False(t, dip.IsNotFound(errors.New("plain error")))
	assert.False(t, dip.IsNotFound(nil))
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	unauthorized := &dip.APIError{StatusCode: http.StatusUnauthorized}
	assert.True(t, dip.IsUnauthorized(unauthorized))
	assert.True(t, dip.IsUnauthorized(fmt.Errorf("wrapped: %w", unauthorized)))

	assert.False(t, dip.IsUnauthorized(&dip.APIError{StatusCode: http.StatusNotFound}))
	assert.False(t, dip.IsUnauthorized(errors.New("plain error")))
}

func TestIsDecodeError(t *testing.T) {
	t.Parallel()

	assert.True(t, dip.IsDecodeError(fmt.Errorf("parsing page: %w", dip.ErrDecode)))
	assert.False(t, dip.IsDecodeError(errors.New("plain error")))
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		expected   *dip.APIError
	}{
		{
			name:       "structured error body",
			statusCode: 401,
			body:       `{"code":401,"message":"An API key is required"}`,
			expected: &dip.APIError{
				StatusCode: 401,
				Detail:     "An API key is required",
			},
		},
		{
			name:       "empty body falls back to status text",
			statusCode: 404,
			body:       "",
			expected: &dip.APIError{
				StatusCode: 404,
				Detail:     "Not Found",
			},
		},
		{
			name:       "unparseable body falls back to status text",
			statusCode: 500,
			body:       "<html>Internal Server Error</html>",
			expected: &dip.APIError{
				StatusCode: 500,
				Detail:     "Internal Server Error",
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			apiErr := dip.ParseAPIError(testCase.statusCode, []byte(testCase.body))
			require.NotNil(t, apiErr)
			assert.Equal(t, testCase.expected, apiErr)
		})
	}
}
