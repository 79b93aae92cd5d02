package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bundestag-io/dip-client/internal/constants"
	"github.com/bundestag-io/dip-client/pkg/dip"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var maxPages int

	cmd := &cobra.Command{
		Use:   "list RESOURCE",
		Short: "List documents of a resource type",
		Long: "List documents of a parliamentary resource type.\n\nValid resource types: " +
			strings.Join(resourceTypeNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCommand(args[0], maxPages)
		},
	}

	cmd.Flags().IntVar(&maxPages, "max-pages", constants.DefaultMaxPages, "maximum number of pages to fetch (0 for all)")

	return cmd
}

func runListCommand(resource string, maxPages int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	iterator, err := client.All(ctx, dip.ResourceType(resource))
	if err != nil {
		return err
	}

	documents, err := collectPages(iterator, maxPages)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", resource, err)
	}

	return outputDocuments(documents)
}

// collectPages drains up to maxPages pages from the iterator. A maxPages
// of zero or less means no limit.
func collectPages(iterator *dip.PageIterator, maxPages int) ([]dip.Document, error) {
	var documents []dip.Document

	pages := 0

	for iterator.HasNext() {
		page, err := iterator.Next()
		if err != nil {
			return nil, err
		}

		documents = append(documents, page.Documents...)

		pages++
		if maxPages > 0 && pages >= maxPages {
			break
		}
	}

	return documents, nil
}

func resourceTypeNames() []string {
	types := dip.ResourceTypes()

	names := make([]string, 0, len(types))
	for _, resourceType := range types {
		names = append(names, string(resourceType))
	}

	return names
}
