package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bundestag-io/dip-client/internal/constants"
	"github.com/bundestag-io/dip-client/internal/http"
	"github.com/bundestag-io/dip-client/pkg/dip"
)

// Client implements the dip.Client interface.
type Client struct {
	httpClient *http.Client
	codec      codec
	format     dip.Format
	logger     dip.Logger

	// Entity clients
	aktivitaeten       dip.AktivitaetenClient
	drucksachen        dip.DrucksachenClient
	personen           dip.PersonenClient
	plenarprotokolle   dip.PlenarprotokolleClient
	vorgaenge          dip.VorgaengeClient
	vorgangspositionen dip.VorgangspositionenClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *dip.Config, format dip.Format) []http.Option {
	httpOpts := []http.Option{http.WithFormat(string(format))}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new DIP API client.
func New(config *dip.Config) (*Client, error) {
	if config == nil {
		return nil, dip.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, dip.ErrAPIKeyRequired
	}

	format := config.Format
	if format == "" {
		format = dip.FormatJSON
	}

	responseCodec, err := codecFor(format)
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpOpts := createHTTPClientOptions(config, format)
	httpClient := http.NewClient(baseURL, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		codec:      responseCodec,
		format:     format,
		logger:     config.Logger,
	}

	client.initializeEntityClients()

	return client, nil
}

// Format implements dip.Client.Format.
func (c *Client) Format() dip.Format {
	return c.format
}

// FetchPage implements dip.PageLister. It issues exactly one request and
// decodes one page.
func (c *Client) FetchPage(ctx context.Context, resource dip.ResourceType, params *dip.QueryParams) (*dip.Page, error) {
	if err := dip.ValidateResourceType(resource); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/"+string(resource), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("fetching %s page: %w", resource, err)
	}

	page, err := c.codec.decodePage(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s page: %w", resource, err)
	}

	return page, nil
}

// Get implements dip.ResourceOperations.Get.
func (c *Client) Get(ctx context.Context, resource dip.ResourceType, id string) (*dip.Document, error) {
	if err := dip.ValidateResourceType(resource); err != nil {
		return nil, err
	}

	path := "/" + string(resource) + "/" + url.PathEscape(id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", resource, id, err)
	}

	document, err := c.codec.decodeDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s %s: %w", resource, id, err)
	}

	return document, nil
}

// All implements dip.ResourceOperations.All. Validation happens before the
// iterator is handed out; no request has been made yet.
func (c *Client) All(ctx context.Context, resource dip.ResourceType) (*dip.PageIterator, error) {
	if err := dip.ValidateResourceType(resource); err != nil {
		return nil, err
	}

	return dip.NewPageIterator(ctx, c, resource, nil), nil
}

// Search implements dip.ResourceOperations.Search.
func (c *Client) Search(ctx context.Context, resource dip.ResourceType, params *dip.QueryParams) (*dip.PageIterator, error) {
	if err := dip.ValidateResourceType(resource); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return dip.NewPageIterator(ctx, c, resource, params), nil
}

// Entity client accessors

// Aktivitaeten implements dip.Client.Aktivitaeten.
func (c *Client) Aktivitaeten() dip.AktivitaetenClient {
	return c.aktivitaeten
}

// Drucksachen implements dip.Client.Drucksachen.
func (c *Client) Drucksachen() dip.DrucksachenClient {
	return c.drucksachen
}

// Personen implements dip.Client.Personen.
func (c *Client) Personen() dip.PersonenClient {
	return c.personen
}

// Plenarprotokolle implements dip.Client.Plenarprotokolle.
func (c *Client) Plenarprotokolle() dip.PlenarprotokolleClient {
	return c.plenarprotokolle
}

// Vorgaenge implements dip.Client.Vorgaenge.
func (c *Client) Vorgaenge() dip.VorgaengeClient {
	return c.vorgaenge
}

// Vorgangspositionen implements dip.Client.Vorgangspositionen.
func (c *Client) Vorgangspositionen() dip.VorgangspositionenClient {
	return c.vorgangspositionen
}

// initializeEntityClients initializes all entity-specific clients.
func (c *Client) initializeEntityClients() {
	c.aktivitaeten = NewAktivitaetenClient(c)
	c.drucksachen = NewDrucksachenClient(c)
	c.personen = NewPersonenClient(c)
	c.plenarprotokolle = NewPlenarprotokolleClient(c)
	c.vorgaenge = NewVorgaengeClient(c)
	c.vorgangspositionen = NewVorgangspositionenClient(c)
}
