// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikidata

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/entity-lookup/pkg/types"
)

// LookupFile is the on-disk form of a saved lookup. The body is stored
// verbatim so a saved lookup can be inspected without re-querying.
type LookupFile struct {
	Lookup types.Lookup `yaml:"lookup"`
}

// WriteLookupFile saves l to path as YAML.
func WriteLookupFile(path string, l types.Lookup) error {
	data, err := yaml.Marshal(&LookupFile{Lookup: l})
	if err != nil {
		return fmt.Errorf("marshaling lookup file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadLookupFile loads a lookup previously written by WriteLookupFile.
func ReadLookupFile(path string) (types.Lookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Lookup{}, fmt.Errorf("reading lookup file: %w", err)
	}
	var lf LookupFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return types.Lookup{}, fmt.Errorf("parsing lookup file: %w", err)
	}
	return lf.Lookup, nil
}
