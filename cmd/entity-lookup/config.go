// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/entity-lookup/internal/history"
	"github.com/pdiddy/entity-lookup/internal/secrets"
	"github.com/pdiddy/entity-lookup/internal/wikidata"
	"github.com/pdiddy/entity-lookup/pkg/types"
)

// setConfigDefaults registers defaults that keep a bare invocation identical
// to a plain GET: no timeout and no retries.
func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("lookup.endpoint", wikidata.DefaultEndpoint)
	v.SetDefault("lookup.language", wikidata.DefaultLanguage)
	v.SetDefault("lookup.timeout", "0s")
	v.SetDefault("lookup.user_agent", "entity-lookup/"+version)
	v.SetDefault("lookup.max_retries", 0)
	v.SetDefault("history.dir", history.DefaultDir)
	v.SetDefault("history.max_results", 20)
}

// loadConfig decodes the merged file, env and default settings.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Lookup.UserAgent = secrets.UserAgent(cfg.Lookup.UserAgent, loadedSecrets)
	return cfg, nil
}
