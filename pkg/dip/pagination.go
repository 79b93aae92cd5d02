package dip

import (
	"context"
)

// PageLister fetches one page of documents for a resource type. It is
// implemented by the concrete client and by test doubles.
type PageLister interface {
	FetchPage(ctx context.Context, resource ResourceType, params *QueryParams) (*Page, error)
}

// PaginationOptions configures the pagination helpers.
type PaginationOptions struct {
	// MaxPages limits the number of pages fetched. 0 means no limit; the
	// result set is still bounded by the server.
	MaxPages int
}

// DefaultPaginationOptions returns default pagination options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// PageIterator walks a cursor-paginated result set one page at a time. Pages
// are fetched lazily, strictly one request in flight, and the sequence is
// not restartable once exhausted.
//
// The DIP server signals exhaustion by returning the cursor it was given:
// iteration stops when the extracted cursor equals the cursor already in the
// outgoing parameters. The server contract is that the cursor strictly
// changes until the result set is exhausted; the final, repeated response is
// not yielded.
type PageIterator struct {
	ctx      context.Context
	lister   PageLister
	resource ResourceType
	params   *QueryParams
	buffered *Page
	err      error
	done     bool
}

// NewPageIterator creates an iterator over all pages of a resource. The
// caller's params are cloned; cursor advancement is owned by the iterator.
func NewPageIterator(ctx context.Context, lister PageLister, resource ResourceType, params *QueryParams) *PageIterator {
	return &PageIterator{
		ctx:      ctx,
		lister:   lister,
		resource: resource,
		params:   params.Clone(),
	}
}

// advance fetches the next page into the buffer if there is one.
func (it *PageIterator) advance() {
	if it.done || it.buffered != nil || it.err != nil {
		return
	}

	page, err := it.lister.FetchPage(it.ctx, it.resource, it.params)
	if err != nil {
		it.err = err

		return
	}

	if page.Cursor == it.params.Cursor {
		// Cursor stopped changing: result set exhausted.
		it.done = true

		return
	}

	it.params.Cursor = page.Cursor
	it.buffered = page
}

// HasNext reports whether Next will return a page or a pending error.
func (it *PageIterator) HasNext() bool {
	it.advance()

	return it.buffered != nil || it.err != nil
}

// Next returns the next page. It returns ErrNoMorePages once the cursor
// stops advancing. Any fetch error is returned once and terminates the
// sequence; no further pages are produced after a failure.
func (it *PageIterator) Next() (*Page, error) {
	it.advance()

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return nil, err
	}

	if it.buffered == nil {
		return nil, ErrNoMorePages
	}

	page := it.buffered
	it.buffered = nil

	return page, nil
}

// All fetches the remaining pages and returns their documents.
func (it *PageIterator) All() ([]Document, error) {
	var documents []Document

	for it.HasNext() {
		page, err := it.Next()
		if err != nil {
			return nil, err
		}

		documents = append(documents, page.Documents...)
	}

	return documents, nil
}

// ForEach calls fn for every remaining document. Iteration stops at the
// first error from fn or from a page fetch.
func (it *PageIterator) ForEach(fn func(Document) error) error {
	for it.HasNext() {
		page, err := it.Next()
		if err != nil {
			return err
		}

		for _, document := range page.Documents {
			if err := fn(document); err != nil {
				return err
			}
		}
	}

	return nil
}

// FetchAllDocuments collects all documents of a paginated result set.
func FetchAllDocuments(ctx context.Context, lister PageLister, resource ResourceType, params *QueryParams, options *PaginationOptions) ([]Document, error) {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	iterator := NewPageIterator(ctx, lister, resource, params)

	var documents []Document

	pages := 0

	for iterator.HasNext() {
		if options.MaxPages > 0 && pages >= options.MaxPages {
			break
		}

		page, err := iterator.Next()
		if err != nil {
			return nil, err
		}

		documents = append(documents, page.Documents...)
		pages++
	}

	return documents, nil
}

// PageResult is one streamed page or a terminal error.
type PageResult struct {
	Page *Page
	Err  error
}

// StreamPages delivers pages over a channel. Requests are still issued one
// at a time; the channel is closed after the last page, after an error, or
// when ctx is cancelled.
func StreamPages(ctx context.Context, lister PageLister, resource ResourceType, params *QueryParams, options *PaginationOptions) <-chan PageResult {
	if options == nil {
		options = DefaultPaginationOptions()
	}

	results := make(chan PageResult)

	go func() {
		defer close(results)

		iterator := NewPageIterator(ctx, lister, resource, params)
		pages := 0

		for iterator.HasNext() {
			if options.MaxPages > 0 && pages >= options.MaxPages {
				return
			}

			page, err := iterator.Next()

			select {
			case results <- PageResult{Page: page, Err: err}:
			case <-ctx.Done():
				return
			}

			if err != nil {
				return
			}

			pages++
		}
	}()

	return results
}
