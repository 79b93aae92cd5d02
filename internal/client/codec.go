package client

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/bundestag-io/dip-client/pkg/dip"
)

// codec decodes raw response bodies into pages and documents. The variant is
// selected once, at client construction, from the configured format.
type codec interface {
	decodePage(body []byte) (*dip.Page, error)
	decodeDocument(body []byte) (*dip.Document, error)
}

func codecFor(format dip.Format) (codec, error) {
	switch format {
	case dip.FormatJSON:
		return jsonCodec{}, nil
	case dip.FormatXML:
		return xmlCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", dip.ErrInvalidFormat, format)
	}
}

// jsonCodec decodes structured (JSON) responses.
type jsonCodec struct{}

func (jsonCodec) decodePage(body []byte) (*dip.Page, error) {
	var envelope struct {
		NumFound  int                      `json:"numFound"`
		Documents []map[string]interface{} `json:"documents"`
		Cursor    string                   `json:"cursor"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", dip.ErrDecode, err)
	}

	page := &dip.Page{
		Cursor:   envelope.Cursor,
		NumFound: envelope.NumFound,
	}

	for _, fields := range envelope.Documents {
		page.Documents = append(page.Documents, dip.Document{Fields: fields})
	}

	return page, nil
}

func (jsonCodec) decodeDocument(body []byte) (*dip.Document, error) {
	var fields map[string]interface{}

	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", dip.ErrDecode, err)
	}

	return &dip.Document{Fields: fields}, nil
}

// xmlCodec decodes markup (XML) responses into element trees.
type xmlCodec struct{}

func (xmlCodec) decodePage(body []byte) (*dip.Page, error) {
	root, err := parseRoot(body)
	if err != nil {
		return nil, err
	}

	page := &dip.Page{}

	for _, element := range root.SelectElements("document") {
		page.Documents = append(page.Documents, dip.Document{Node: element})
	}

	// A response without a cursor element reads as the unset cursor and
	// terminates pagination, same as the structured mode.
	if cursor := root.SelectElement("cursor"); cursor != nil {
		page.Cursor = cursor.Text()
	}

	if numFound := root.SelectElement("numFound"); numFound != nil {
		if n, err := strconv.Atoi(numFound.Text()); err == nil {
			page.NumFound = n
		}
	}

	return page, nil
}

func (xmlCodec) decodeDocument(body []byte) (*dip.Document, error) {
	root, err := parseRoot(body)
	if err != nil {
		return nil, err
	}

	return &dip.Document{Node: root}, nil
}

func parseRoot(body []byte) (*etree.Element, error) {
	tree := etree.NewDocument()

	if err := tree.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("%w: %w", dip.ErrDecode, err)
	}

	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", dip.ErrDecode)
	}

	return root, nil
}
