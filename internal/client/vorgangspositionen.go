package client

import (
	"context"
	"fmt"

	"github.com/bundestag-io/dip-client/pkg/dip"
)

// VorgangspositionenClient implements dip.VorgangspositionenClient.
type VorgangspositionenClient struct {
	client *Client
}

// NewVorgangspositionenClient creates a new procedure step client.
func NewVorgangspositionenClient(client *Client) *VorgangspositionenClient {
	return &VorgangspositionenClient{client: client}
}

// Get implements dip.VorgangspositionenClient.Get.
func (c *VorgangspositionenClient) Get(ctx context.Context, id string) (*dip.Vorgangsposition, error) {
	document, err := c.client.Get(ctx, dip.ResourceVorgangsposition, id)
	if err != nil {
		return nil, err
	}

	var position dip.Vorgangsposition

	if err := document.Decode(&position); err != nil {
		return nil, fmt.Errorf("parsing vorgangsposition: %w", err)
	}

	return &position, nil
}

// List implements dip.VorgangspositionenClient.List.
func (c *VorgangspositionenClient) List(ctx context.Context) (*dip.PageIterator, error) {
	return c.client.All(ctx, dip.ResourceVorgangsposition)
}

// Search implements dip.VorgangspositionenClient.Search.
func (c *VorgangspositionenClient) Search(ctx context.Context, params *dip.QueryParams) (*dip.PageIterator, error) {
	return c.client.Search(ctx, dip.ResourceVorgangsposition, params)
}
