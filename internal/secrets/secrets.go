// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads operator details from a directory of plain-text
// files, one value per file: the filename is the key and the trimmed file
// contents are the value.
//
// The entity API is anonymous, so the only key read is contact-email, which
// is appended to the User-Agent as Wikimedia's User-Agent policy asks.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// ContactEmail is the key holding the operator's contact address.
const ContactEmail = "contact-email"

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error. Hidden files, directories
// and empty files are skipped; unreadable files are logged and skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}
	return out, nil
}

// UserAgent returns base with the contact email from s appended in the
// conventional "name/version (contact)" form. base is returned unchanged
// when no contact email is present.
func UserAgent(base string, s map[string]string) string {
	email := s[ContactEmail]
	if email == "" {
		return base
	}
	return fmt.Sprintf("%s (%s)", base, email)
}
