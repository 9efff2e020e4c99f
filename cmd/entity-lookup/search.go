// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/entity-lookup/internal/history"
	"github.com/pdiddy/entity-lookup/internal/wikidata"
	"github.com/pdiddy/entity-lookup/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <term...>",
	Short: "Search Wikidata entities by label or alias",
	Long: `Search sends one wbsearchentities request for the given term and prints
the raw response body followed by a newline. Multiple arguments are joined
with spaces into a single term.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	addLookupFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

// addLookupFlags registers the flags shared by commands that hit the API.
func addLookupFlags(cmd *cobra.Command) {
	cmd.Flags().String("language", "", "language code (default from config, \"en\")")
	cmd.Flags().String("save", "", "also write the lookup to this YAML file")
	cmd.Flags().Bool("record", false, "record the lookup in the history database")
}

// lookupOptions carries the per-invocation output flags.
type lookupOptions struct {
	SavePath string
	Record   bool
	History  types.HistoryConfig
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")
	client, opts, err := lookupSetup(cmd)
	if err != nil {
		return err
	}
	return runLookup(cmd.Context(), cmd.OutOrStdout(), opts, func(ctx context.Context) (types.Lookup, error) {
		return client.SearchLookup(ctx, term)
	})
}

// lookupSetup builds the client and output options from config and flags.
func lookupSetup(cmd *cobra.Command) (*wikidata.Client, lookupOptions, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, lookupOptions{}, err
	}
	if lang, _ := cmd.Flags().GetString("language"); lang != "" {
		cfg.Lookup.Language = lang
	}

	opts := lookupOptions{History: cfg.History}
	opts.SavePath, _ = cmd.Flags().GetString("save")
	opts.Record, _ = cmd.Flags().GetBool("record")

	return wikidata.NewClient(cfg.Lookup, wikidata.WithLogger(logger)), opts, nil
}

// runLookup performs one fetch, prints the raw body and a newline to w,
// then applies the save and record options. Nothing is printed when the
// fetch fails.
func runLookup(ctx context.Context, w io.Writer, opts lookupOptions, fetch func(context.Context) (types.Lookup, error)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	l, err := fetch(ctx)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, l.Body); err != nil {
		return err
	}

	if opts.SavePath != "" {
		if err := wikidata.WriteLookupFile(opts.SavePath, l); err != nil {
			return err
		}
		logger.Info().Str("path", opts.SavePath).Msg("lookup saved")
	}

	if opts.Record {
		store, err := history.Open(opts.History)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.Record(ctx, l)
		if err != nil {
			return err
		}
		logger.Debug().Int64("id", id).Msg("lookup recorded")
	}
	return nil
}
