package dip

import (
	"fmt"
	"net/url"
	"sort"
)

// Query parameter names accepted by the DIP API.
const (
	ParamCursor          = "cursor"
	ParamFormat          = "format"
	ParamID              = "f.id"
	ParamDateStart       = "f.datum.start"
	ParamDateEnd         = "f.datum.end"
	ParamDrucksache      = "f.drucksache"
	ParamPlenarprotokoll = "f.plenarprotokoll"
	ParamVorgang         = "f.vorgang"
	ParamAktivitaet      = "f.aktivitaet"
	ParamZuordnung       = "f.zuordnung"
)

// ParameterNames returns the fixed set of query parameter names accepted by
// the API.
func ParameterNames() []string {
	return []string{
		ParamCursor,
		ParamFormat,
		ParamID,
		ParamDateStart,
		ParamDateEnd,
		ParamDrucksache,
		ParamPlenarprotokoll,
		ParamVorgang,
		ParamAktivitaet,
		ParamZuordnung,
	}
}

// ValidateParameterNames checks every key of the map against the fixed
// allow-list. Not every resource type supports every parameter; that
// combination is enforced by the API, not here.
func ValidateParameterNames(params map[string][]string) error {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if !isKnownParameter(key) {
			return fmt.Errorf("%w: %q (expected one of %v)", ErrInvalidParameter, key, ParameterNames())
		}
	}

	return nil
}

func isKnownParameter(name string) bool {
	for _, known := range ParameterNames() {
		if name == known {
			return true
		}
	}

	return false
}

// QueryParams represents query options for DIP list requests. Multi-valued
// filters are sent as repeated query-string keys, which the API interprets
// as an OR over the values.
type QueryParams struct {
	// Cursor is the pagination token. Managed by the pagination iterator;
	// leave empty for the first page.
	Cursor string

	// Filters maps parameter names (f.id, f.datum.start, ...) to one or
	// more values.
	Filters map[string][]string
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithCursor sets the pagination cursor.
func (p *QueryParams) WithCursor(cursor string) *QueryParams {
	p.Cursor = cursor

	return p
}

// WithFilter appends values for a filter parameter.
func (p *QueryParams) WithFilter(name string, values ...string) *QueryParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[name] = append(p.Filters[name], values...)

	return p
}

// WithIDs filters by one or more entity ids (repeated f.id keys).
func (p *QueryParams) WithIDs(ids ...string) *QueryParams {
	return p.WithFilter(ParamID, ids...)
}

// WithDateStart filters by earliest document date (YYYY-MM-DD).
func (p *QueryParams) WithDateStart(date string) *QueryParams {
	return p.WithFilter(ParamDateStart, date)
}

// WithDateEnd filters by latest document date (YYYY-MM-DD).
func (p *QueryParams) WithDateEnd(date string) *QueryParams {
	return p.WithFilter(ParamDateEnd, date)
}

// WithZuordnung filters by the assignment (BT, BR, BV, EK).
func (p *QueryParams) WithZuordnung(zuordnung string) *QueryParams {
	return p.WithFilter(ParamZuordnung, zuordnung)
}

// Validate checks all parameter names against the fixed allow-list.
func (p *QueryParams) Validate() error {
	if p == nil {
		return nil
	}

	return ValidateParameterNames(p.Filters)
}

// ToValues converts QueryParams to url.Values. Multi-valued filters become
// repeated keys.
func (p *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Cursor != "" {
		values.Set(ParamCursor, p.Cursor)
	}

	for name, filterValues := range p.Filters {
		for _, value := range filterValues {
			values.Add(name, value)
		}
	}

	return values
}

// Clone returns a deep copy. The pagination iterator clones caller params so
// cursor advancement never mutates the caller's instance.
func (p *QueryParams) Clone() *QueryParams {
	clone := NewQueryParams()

	if p == nil {
		return clone
	}

	clone.Cursor = p.Cursor
	for name, values := range p.Filters {
		clone.Filters[name] = append([]string(nil), values...)
	}

	return clone
}
