// Package dip provides types, interfaces, and helpers for working with the
// DIP API of the German Bundestag, the "Dokumentations- und
// Informationssystem für Parlamentsmaterialien"
// (https://search.dip.bundestag.de/api/v1).
//
// # Overview
//
// The dip package defines the domain types (Aktivitaet, Drucksache, Person,
// Plenarprotokoll, Vorgang, Vorgangsposition), the query parameter builder,
// the cursor pagination iterator, and the client interfaces. A concrete
// implementation is provided by the dipclient package, which wires
// configuration, transport, and response decoding. Most consumers should
// import dipclient to construct a client and then interact with the
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/bundestag-io/dip-client/pkg/dip"
//	  "github.com/bundestag-io/dip-client/pkg/dipclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dipclient.New(&dip.Config{APIKey: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  person, err := cli.Personen().Get(ctx, "1234")
//	  if err != nil { log.Fatal(err) }
//	  _ = person
//	}
//
// # Queries and pagination
//
// Use QueryParams to express the filters the API accepts (f.id,
// f.datum.start, f.datum.end, f.vorgang, ...). List results are paginated by
// an opaque cursor; the server returns the same cursor again once the result
// set is exhausted. PageIterator owns the cursor and walks the pages lazily:
//
//	it, err := cli.Search(ctx, dip.ResourceVorgang, dip.NewQueryParams().WithDateStart("2024-01-01"))
//	if err != nil { /* handle error */ }
//	for it.HasNext() {
//	  page, err := it.Next()
//	  if err != nil { break }
//	  _ = page.Documents
//	}
//
// or collect everything at once:
//
//	all, err := dip.FetchAllDocuments(ctx, cli, dip.ResourceVorgang, nil, nil)
//
// # Formats
//
// The client requests either structured JSON (the default) or XML; the
// format is fixed at construction. In structured mode documents carry a
// decoded field map, in markup mode an element tree. Document accessors (ID,
// Title, Date) work in both modes.
//
// # Errors
//
// API errors are represented by APIError; helpers such as IsNotFound and
// IsUnauthorized make it easy to branch on common cases. Validation errors
// (unknown resource type or parameter name) are reported before any request
// is made.
package dip
