// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikidata

import (
	"net/url"
	"strings"

	"github.com/pdiddy/entity-lookup/pkg/types"
)

const (
	// DefaultLanguage is the language code sent when none is configured.
	DefaultLanguage = "en"

	formatJSON = "json"
)

// SearchRequest is the immutable set of parameters for one
// wbsearchentities call. Build it with NewSearchRequest.
type SearchRequest struct {
	term     string
	language string
	format   string
}

// NewSearchRequest validates term and returns a request for it. An empty
// language falls back to DefaultLanguage. The term is otherwise passed
// through untouched; the remote service decides what it matches.
func NewSearchRequest(term, language string) (SearchRequest, error) {
	if term == "" {
		return SearchRequest{}, ErrEmptyTerm
	}
	if language == "" {
		language = DefaultLanguage
	}
	return SearchRequest{term: term, language: language, format: formatJSON}, nil
}

// Term returns the search term.
func (r SearchRequest) Term() string { return r.term }

// Language returns the language code.
func (r SearchRequest) Language() string { return r.language }

// Format returns the response format, always "json".
func (r SearchRequest) Format() string { return r.format }

// Values returns the four query parameters of the request.
func (r SearchRequest) Values() url.Values {
	return url.Values{
		"action":   {string(types.ActionSearchEntities)},
		"format":   {r.format},
		"language": {r.language},
		"search":   {r.term},
	}
}

// URL returns endpoint with the request's query string attached.
// Spaces in the term are encoded as "+".
func (r SearchRequest) URL(endpoint string) string {
	return endpoint + "?" + r.Values().Encode()
}

// entitiesValues builds the wbgetentities query for ids. Blank ids are
// dropped; the result is nil when none remain.
func entitiesValues(ids []string, language string) url.Values {
	var clean []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			clean = append(clean, id)
		}
	}
	if len(clean) == 0 {
		return nil
	}
	return url.Values{
		"action":    {string(types.ActionGetEntities)},
		"format":    {formatJSON},
		"languages": {language},
		"ids":       {strings.Join(clean, "|")},
	}
}
