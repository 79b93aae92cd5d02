package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bundestag-io/dip-client/internal/constants"
	"github.com/bundestag-io/dip-client/pkg/dip"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var (
		filters   []string
		ids       []string
		dateStart string
		dateEnd   string
		maxPages  int
	)

	cmd := &cobra.Command{
		Use:   "search RESOURCE",
		Short: "Search documents with filters",
		Long: "Search parliamentary documents with server-side filters.\n\n" +
			"Valid resource types: " + strings.Join(resourceTypeNames(), ", ") + "\n" +
			"Valid filter names: " + strings.Join(dip.ParameterNames(), ", "),
		Example: `  dip search vorgang --date-start 2024-01-01 --date-end 2024-12-31
  dip search drucksache --id 68852 --id 68853
  dip search aktivitaet --filter f.zuordnung=BT`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearchCommand(args[0], filters, ids, dateStart, dateEnd, maxPages)
		},
	}

	cmd.Flags().StringArrayVarP(&filters, "filter", "F", nil, "filter as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&ids, "id", nil, "document ID to match (repeatable)")
	cmd.Flags().StringVar(&dateStart, "date-start", "", "earliest document date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateEnd, "date-end", "", "latest document date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&maxPages, "max-pages", constants.DefaultMaxPages, "maximum number of pages to fetch (0 for all)")

	return cmd
}

func runSearchCommand(resource string, filters, ids []string, dateStart, dateEnd string, maxPages int) error {
	params, err := parseFilterFlags(filters)
	if err != nil {
		return err
	}

	if len(ids) > 0 {
		params.WithIDs(ids...)
	}

	if dateStart != "" {
		params.WithDateStart(dateStart)
	}

	if dateEnd != "" {
		params.WithDateEnd(dateEnd)
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	iterator, err := client.Search(ctx, dip.ResourceType(resource), params)
	if err != nil {
		return err
	}

	documents, err := collectPages(iterator, maxPages)
	if err != nil {
		return fmt.Errorf("failed to search %s: %w", resource, err)
	}

	return outputDocuments(documents)
}
