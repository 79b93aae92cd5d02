package client

import (
	"context"
	"fmt"

	"github.com/bundestag-io/dip-client/pkg/dip"
)

// PersonenClient implements dip.PersonenClient.
type PersonenClient struct {
	client *Client
}

// NewPersonenClient creates a new person client.
func NewPersonenClient(client *Client) *PersonenClient {
	return &PersonenClient{client: client}
}

// Get implements dip.PersonenClient.Get.
func (c *PersonenClient) Get(ctx context.Context, id string) (*dip.Person, error) {
	document, err := c.client.Get(ctx, dip.ResourcePerson, id)
	if err != nil {
		return nil, err
	}

	var person dip.Person

	if err := document.Decode(&person); err != nil {
		return nil, fmt.Errorf("parsing person: %w", err)
	}

	return &person, nil
}

// List implements dip.PersonenClient.List.
func (c *PersonenClient) List(ctx context.Context) (*dip.PageIterator, error) {
	return c.client.All(ctx, dip.ResourcePerson)
}

// Search implements dip.PersonenClient.Search.
func (c *PersonenClient) Search(ctx context.Context, params *dip.QueryParams) (*dip.PageIterator, error) {
	return c.client.Search(ctx, dip.ResourcePerson, params)
}
