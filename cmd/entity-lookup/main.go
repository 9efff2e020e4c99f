// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the entity-lookup CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/entity-lookup/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultTerm is the lookup performed when the CLI runs without a subcommand.
const defaultTerm = "Barry Obama"

// loadedSecrets holds operator details loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// logger is the CLI's stderr logger, configured in PersistentPreRunE.
var logger = zerolog.Nop()

// rootCmd is the base command for the entity-lookup CLI.
var rootCmd = &cobra.Command{
	Use:   "entity-lookup",
	Short: "Look up entities in the Wikidata search API",
	Long: `entity-lookup queries the Wikidata entity API and prints the raw JSON
response. Without a subcommand it searches for "Barry Obama".

Responses are printed exactly as received; HTTP status codes are not checked
and the JSON is not parsed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogger(verbose)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug().Str("file", f).Msg("using config file")
		}

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, []string{defaultTerm})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./entity-lookup.yaml or ~/.config/entity-lookup/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	addLookupFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("entity-lookup")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "entity-lookup"))
		}
	}

	setConfigDefaults(viper.GetViper())

	viper.SetEnvPrefix("ENTITY_LOOKUP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}
}

func setupLogger(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	log.Logger = logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupLogger(false)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("entity-lookup failed")
		stop()
		os.Exit(1)
	}
}
