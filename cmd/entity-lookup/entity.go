// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pdiddy/entity-lookup/pkg/types"
)

var entityCmd = &cobra.Command{
	Use:   "entity <id...>",
	Short: "Fetch full entity records by id (e.g. Q76)",
	Long: `Entity sends one wbgetentities request for the given ids and prints the
raw response body.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEntity,
}

func init() {
	addLookupFlags(entityCmd)
	rootCmd.AddCommand(entityCmd)
}

func runEntity(cmd *cobra.Command, args []string) error {
	client, opts, err := lookupSetup(cmd)
	if err != nil {
		return err
	}
	return runLookup(cmd.Context(), cmd.OutOrStdout(), opts, func(ctx context.Context) (types.Lookup, error) {
		return client.EntitiesLookup(ctx, args...)
	})
}
