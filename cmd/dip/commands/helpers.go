package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/bundestag-io/dip-client/internal/constants"
	"github.com/bundestag-io/dip-client/pkg/dip"
	"github.com/bundestag-io/dip-client/pkg/dipclient"
)

// Static errors for command validation.
var (
	ErrNoAPIKeyConfigured  = errors.New("no API key configured (set one with 'dip config set-key' or the --api-key flag)")
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrInvalidFilterFlag   = errors.New("filter must be of the form name=value")
)

// CreateClient builds a dip.Client from the resolved configuration.
func CreateClient() (dip.Client, error) {
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrNoAPIKeyConfigured
	}

	config := &dip.Config{
		APIKey:  apiKey,
		Format:  dip.Format(viper.GetString("format")),
		BaseURL: viper.GetString("base-url"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewZerologLogger(os.Stderr)
	}

	client, err := dipclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// parseFilterFlags converts repeated name=value flags into query params.
// Repeated names accumulate into repeated query keys.
func parseFilterFlags(filters []string) (*dip.QueryParams, error) {
	params := dip.NewQueryParams()

	for _, filter := range filters {
		name, value, found := strings.Cut(filter, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilterFlag, filter)
		}

		params.WithFilter(name, value)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

// outputDocuments renders documents in the requested output format.
func outputDocuments(documents []dip.Document) error {
	output := viper.GetString("output")

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(documentFields(documents))
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(documentFields(documents))
	case constants.FormatTable:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Type", "Date", "Title")

		for _, document := range documents {
			_ = table.Append(document.ID(), document.Type(), document.Date(), truncate(document.Title(), constants.TitleDisplayLength))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, output)
	}
}

// outputDocument renders a single document.
func outputDocument(document *dip.Document) error {
	output := viper.GetString("output")

	switch output {
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(singleDocumentFields(document))
	case constants.FormatJSON, constants.FormatTable:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(singleDocumentFields(document))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, output)
	}
}

// documentFields flattens documents for serialization. Markup-mode documents
// are reduced to their common fields; JSON-mode documents keep everything.
func documentFields(documents []dip.Document) []map[string]interface{} {
	fields := make([]map[string]interface{}, 0, len(documents))

	for i := range documents {
		fields = append(fields, singleDocumentFields(&documents[i]))
	}

	return fields
}

func singleDocumentFields(document *dip.Document) map[string]interface{} {
	if document.Fields != nil {
		return document.Fields
	}

	return map[string]interface{}{
		"id":    document.ID(),
		"typ":   document.Type(),
		"datum": document.Date(),
		"titel": document.Title(),
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit-3] + "..."
}
