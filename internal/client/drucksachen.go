package client

import (
	"context"
	"fmt"

	"github.com/bundestag-io/dip-client/pkg/dip"
)

// DrucksachenClient implements dip.DrucksachenClient.
type DrucksachenClient struct {
	client *Client
}

// NewDrucksachenClient creates a new printed-matter client.
func NewDrucksachenClient(client *Client) *DrucksachenClient {
	return &DrucksachenClient{client: client}
}

// Get implements dip.DrucksachenClient.Get.
func (c *DrucksachenClient) Get(ctx context.Context, id string) (*dip.Drucksache, error) {
	return c.get(ctx, dip.ResourceDrucksache, id)
}

// GetText implements dip.DrucksachenClient.GetText. The drucksache-text
// resource carries the full document text.
func (c *DrucksachenClient) GetText(ctx context.Context, id string) (*dip.Drucksache, error) {
	return c.get(ctx, dip.ResourceDrucksacheText, id)
}

func (c *DrucksachenClient) get(ctx context.Context, resource dip.ResourceType, id string) (*dip.Drucksache, error) {
	document, err := c.client.Get(ctx, resource, id)
	if err != nil {
		return nil, err
	}

	var drucksache dip.Drucksache

	if err := document.Decode(&drucksache); err != nil {
		return nil, fmt.Errorf("parsing drucksache: %w", err)
	}

	return &drucksache, nil
}

// List implements dip.DrucksachenClient.List.
func (c *DrucksachenClient) List(ctx context.Context) (*dip.PageIterator, error) {
	return c.client.All(ctx, dip.ResourceDrucksache)
}

// Search implements dip.DrucksachenClient.Search.
func (c *DrucksachenClient) Search(ctx context.Context, params *dip.QueryParams) (*dip.PageIterator, error) {
	return c.client.Search(ctx, dip.ResourceDrucksache, params)
}
