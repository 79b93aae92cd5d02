package dipclient

import (
	"strings"

	"github.com/bundestag-io/dip-client/internal/client"
	"github.com/bundestag-io/dip-client/pkg/dip"
)

// New creates a new DIP API client. The API key is required; an individual
// key is issued on https://dip.bundestag.de. No request is made during
// construction.
func New(config *dip.Config) (dip.Client, error) {
	if config == nil {
		return nil, dip.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, dip.ErrAPIKeyRequired
	}

	// Normalize endpoint
	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(config.BaseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		config.BaseURL = baseURL
	}

	return client.New(config)
}
