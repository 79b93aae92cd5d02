package client

import (
	"context"
	"fmt"

	"github.com/bundestag-io/dip-client/pkg/dip"
)

// PlenarprotokolleClient implements dip.PlenarprotokolleClient.
type PlenarprotokolleClient struct {
	client *Client
}

// NewPlenarprotokolleClient creates a new plenary protocol client.
func NewPlenarprotokolleClient(client *Client) *PlenarprotokolleClient {
	return &PlenarprotokolleClient{client: client}
}

// Get implements dip.PlenarprotokolleClient.Get.
func (c *PlenarprotokolleClient) Get(ctx context.Context, id string) (*dip.Plenarprotokoll, error) {
	return c.get(ctx, dip.ResourcePlenarprotokoll, id)
}

// GetText implements dip.PlenarprotokolleClient.GetText. The
// plenarprotokoll-text resource carries the full session text.
func (c *PlenarprotokolleClient) GetText(ctx context.Context, id string) (*dip.Plenarprotokoll, error) {
	return c.get(ctx, dip.ResourcePlenarprotokollText, id)
}

func (c *PlenarprotokolleClient) get(ctx context.Context, resource dip.ResourceType, id string) (*dip.Plenarprotokoll, error) {
	document, err := c.client.Get(ctx, resource, id)
	if err != nil {
		return nil, err
	}

	var protokoll dip.Plenarprotokoll

	if err := document.Decode(&protokoll); err != nil {
		return nil, fmt.Errorf("parsing plenarprotokoll: %w", err)
	}

	return &protokoll, nil
}

// List implements dip.PlenarprotokolleClient.List.
func (c *PlenarprotokolleClient) List(ctx context.Context) (*dip.PageIterator, error) {
	return c.client.All(ctx, dip.ResourcePlenarprotokoll)
}

// Search implements dip.PlenarprotokolleClient.Search.
func (c *PlenarprotokolleClient) Search(ctx context.Context, params *dip.QueryParams) (*dip.PageIterator, error) {
	return c.client.Search(ctx, dip.ResourcePlenarprotokoll, params)
}
