package dip

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/beevik/etree"
)

// Format selects the response encoding requested from the DIP API.
type Format string

const (
	// FormatJSON requests structured JSON responses (the default).
	FormatJSON Format = "json"

	// FormatXML requests XML responses decoded into element trees.
	FormatXML Format = "xml"
)

// ResourceType identifies a category of parliamentary records served by the
// DIP API. It is used as a URL path segment.
type ResourceType string

const (
	ResourceAktivitaet          ResourceType = "aktivitaet"
	ResourceDrucksache          ResourceType = "drucksache"
	ResourceDrucksacheText      ResourceType = "drucksache-text"
	ResourcePerson              ResourceType = "person"
	ResourcePlenarprotokoll     ResourceType = "plenarprotokoll"
	ResourcePlenarprotokollText ResourceType = "plenarprotokoll-text"
	ResourceVorgang             ResourceType = "vorgang"
	ResourceVorgangsposition    ResourceType = "vorgangsposition"
)

// ResourceTypes returns the fixed set of resource types accepted by the API.
func ResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceAktivitaet,
		ResourceDrucksache,
		ResourceDrucksacheText,
		ResourcePerson,
		ResourcePlenarprotokoll,
		ResourcePlenarprotokollText,
		ResourceVorgang,
		ResourceVorgangsposition,
	}
}

// ValidateResourceType checks the resource type against the fixed allow-list.
func ValidateResourceType(resource ResourceType) error {
	for _, known := range ResourceTypes() {
		if resource == known {
			return nil
		}
	}

	return fmt.Errorf("%w: %q (expected one of %v)", ErrInvalidResourceType, resource, ResourceTypes())
}

// Document is one record from a response page. Exactly one of Fields or Node
// is populated, depending on the format the client was constructed with.
type Document struct {
	// Fields holds the decoded JSON object in structured mode.
	Fields map[string]interface{}

	// Node holds the <document> element in markup mode.
	Node *etree.Element
}

// ID returns the document id, or the empty string if absent.
func (d Document) ID() string {
	return d.text("id")
}

// Title returns the document title, or the empty string if absent.
func (d Document) Title() string {
	return d.text("titel")
}

// Date returns the document date (YYYY-MM-DD), or the empty string if absent.
func (d Document) Date() string {
	return d.text("datum")
}

// Type returns the entity type reported by the API (e.g. "Dokument",
// "Vorgang"), or the empty string if absent.
func (d Document) Type() string {
	return d.text("typ")
}

func (d Document) text(field string) string {
	if d.Fields != nil {
		if value, ok := d.Fields[field].(string); ok {
			return value
		}

		return ""
	}

	if d.Node != nil {
		if child := d.Node.SelectElement(field); child != nil {
			return child.Text()
		}
	}

	return ""
}

// Decode unmarshals the document fields into a typed value. It is only
// supported in structured mode; markup-mode documents keep their element
// tree and return ErrTypedDecodeMarkup.
func (d Document) Decode(v interface{}) error {
	if d.Fields == nil {
		return ErrTypedDecodeMarkup
	}

	raw, err := json.Marshal(d.Fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

// Page is one batch of documents returned by a single request, together with
// the pagination cursor the server handed back.
type Page struct {
	// Documents are the records of this page, in server order.
	Documents []Document

	// Cursor is the opaque pagination token for the next request. Empty
	// means the server did not return one.
	Cursor string

	// NumFound is the total number of matching records the server reported,
	// when available.
	NumFound int
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a dip.Client.
//
// The API key is appended to every request as the apikey query parameter; a
// key is issued on the DIP web site. Format selects between structured
// (JSON) and markup (XML) response decoding and is fixed for the lifetime of
// the client.
type Config struct {
	// APIKey is the static DIP API key (required).
	APIKey string

	// Format is the response encoding. Defaults to FormatJSON.
	Format Format

	// BaseURL overrides the DIP API endpoint. Defaults to the public
	// https://search.dip.bundestag.de/api/v1 endpoint.
	BaseURL string

	// Timeout is the per-request HTTP timeout. Defaults to 5 seconds.
	Timeout time.Duration

	// RetryMax is the maximum number of retries for transient failures.
	// The default is 0: failures propagate immediately.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string
}
