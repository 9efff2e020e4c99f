// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/entity-lookup/internal/history"
	"github.com/pdiddy/entity-lookup/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List recorded lookups or print one by id",
	Long: `History reads the lookup log written by --record. Without an argument it
lists recent lookups, newest first. With an id it prints that lookup's raw
response body.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("query", "", "only list lookups whose term contains this text")
	historyCmd.Flags().Int("limit", 0, "maximum number of lookups to list (default from config, 20)")
	historyCmd.Flags().Bool("json", false, "output lookups as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	store, err := history.Open(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lookup id %q: %w", args[0], err)
		}
		l, err := store.Get(ctx, id)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, l.Body)
		return err
	}

	query, _ := cmd.Flags().GetString("query")
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	lookups, err := store.List(ctx, history.ListOptions{Query: query, Limit: limit})
	if err != nil {
		return err
	}
	if asJSON {
		return writeHistoryJSON(out, lookups)
	}
	writeHistoryTable(out, lookups)
	return nil
}

func writeHistoryJSON(w io.Writer, lookups []types.Lookup) error {
	if lookups == nil {
		lookups = []types.Lookup{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lookups)
}

func writeHistoryTable(w io.Writer, lookups []types.Lookup) {
	if len(lookups) == 0 {
		fmt.Fprintln(w, "no lookups recorded")
		return
	}
	for _, l := range lookups {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d bytes\n",
			l.ID, l.Timestamp.Local().Format(time.DateTime), l.Action, l.Term, len(l.Body))
	}
}
