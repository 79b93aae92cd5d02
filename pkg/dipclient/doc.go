// Package dipclient constructs ready-to-use DIP API clients from a
// dip.Config. It normalizes the endpoint, selects the response codec for the
// configured format, and wires the HTTP transport. See the dip package for
// the client interfaces and domain types.
package dipclient
