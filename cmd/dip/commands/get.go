package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bundestag-io/dip-client/pkg/dip"
)

// NewGetCommand creates the get command.
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get RESOURCE ID",
		Short: "Fetch a single document by ID",
		Long: "Fetch a single parliamentary document by its numeric ID.\n\nValid resource types: " +
			strings.Join(resourceTypeNames(), ", "),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGetCommand(args[0], args[1])
		},
	}
}

func runGetCommand(resource, id string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	document, err := client.Get(ctx, dip.ResourceType(resource), id)
	if err != nil {
		return fmt.Errorf("failed to get %s %s: %w", resource, id, err)
	}

	return outputDocument(document)
}
