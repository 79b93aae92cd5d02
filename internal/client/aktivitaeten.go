package client

import (
	"context"
	"fmt"

	"github.com/bundestag-io/dip-client/pkg/dip"
)

// AktivitaetenClient implements dip.AktivitaetenClient.
type AktivitaetenClient struct {
	client *Client
}

// NewAktivitaetenClient creates a new activity client.
func NewAktivitaetenClient(client *Client) *AktivitaetenClient {
	return &AktivitaetenClient{client: client}
}

// Get implements dip.AktivitaetenClient.Get.
func (c *AktivitaetenClient) Get(ctx context.Context, id string) (*dip.Aktivitaet, error) {
	document, err := c.client.Get(ctx, dip.ResourceAktivitaet, id)
	if err != nil {
		return nil, err
	}

	var aktivitaet dip.Aktivitaet

	if err := document.Decode(&aktivitaet); err != nil {
		return nil, fmt.Errorf("parsing aktivitaet: %w", err)
	}

	return &aktivitaet, nil
}

// List implements dip.AktivitaetenClient.List.
func (c *AktivitaetenClient) List(ctx context.Context) (*dip.PageIterator, error) {
	return c.client.All(ctx, dip.ResourceAktivitaet)
}

// Search implements dip.AktivitaetenClient.Search.
func (c *AktivitaetenClient) Search(ctx context.Context, params *dip.QueryParams) (*dip.PageIterator, error) {
	return c.client.Search(ctx, dip.ResourceAktivitaet, params)
}
