package dip

import (
	"context"
)

// ResourceOperations provides the generic operations shared by every
// resource type: single-document lookup, full listing, and filtered search.
type ResourceOperations interface {
	// Get fetches a single document by id. One request, no pagination.
	Get(ctx context.Context, resource ResourceType, id string) (*Document, error)

	// All returns a lazy page iterator over every document of the resource
	// type. The resource type is validated before any request is made.
	All(ctx context.Context, resource ResourceType) (*PageIterator, error)

	// Search returns a lazy page iterator over the documents matching the
	// given parameters. Resource type and parameter names are validated
	// before any request is made; parameter applicability per resource type
	// is left to the server.
	Search(ctx context.Context, resource ResourceType, params *QueryParams) (*PageIterator, error)

	PageLister
}

// EntityClients provides access to the typed per-resource clients.
type EntityClients interface {
	Aktivitaeten() AktivitaetenClient
	Drucksachen() DrucksachenClient
	Personen() PersonenClient
	Plenarprotokolle() PlenarprotokolleClient
	Vorgaenge() VorgaengeClient
	Vorgangspositionen() VorgangspositionenClient
}

// Client is the full DIP API client surface.
type Client interface {
	ResourceOperations
	EntityClients

	// Format returns the response format the client was built with.
	Format() Format
}
