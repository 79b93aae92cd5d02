package client

import (
	"context"
	"fmt"

	"github.com/bundestag-io/dip-client/pkg/dip"
)

// VorgaengeClient implements dip.VorgaengeClient.
type VorgaengeClient struct {
	client *Client
}

// NewVorgaengeClient creates a new procedure client.
func NewVorgaengeClient(client *Client) *VorgaengeClient {
	return &VorgaengeClient{client: client}
}

// Get implements dip.VorgaengeClient.Get.
func (c *VorgaengeClient) Get(ctx context.Context, id string) (*dip.Vorgang, error) {
	document, err := c.client.Get(ctx, dip.ResourceVorgang, id)
	if err != nil {
		return nil, err
	}

	var vorgang dip.Vorgang

	if err := document.Decode(&vorgang); err != nil {
		return nil, fmt.Errorf("parsing vorgang: %w", err)
	}

	return &vorgang, nil
}

// List implements dip.VorgaengeClient.List.
func (c *VorgaengeClient) List(ctx context.Context) (*dip.PageIterator, error) {
	return c.client.All(ctx, dip.ResourceVorgang)
}

// Search implements dip.VorgaengeClient.Search.
func (c *VorgaengeClient) Search(ctx context.Context, params *dip.QueryParams) (*dip.PageIterator, error) {
	return c.client.Search(ctx, dip.ResourceVorgang, params)
}
