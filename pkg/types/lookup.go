// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for entity-lookup.
package types

import "time"

// Action names the MediaWiki API action a lookup used.
type Action string

const (
	ActionSearchEntities Action = "wbsearchentities"
	ActionGetEntities    Action = "wbgetentities"
)

// Lookup records one completed request to the entity API. Body holds the
// response exactly as the server sent it.
type Lookup struct {
	// ID is the history row id. Zero until the lookup is recorded.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	// Action is the API action that produced Body.
	Action Action `json:"action" yaml:"action"`

	// Term is the search term, or the pipe-joined entity ids for wbgetentities.
	Term string `json:"term" yaml:"term"`

	// Language is the language code sent with the request.
	Language string `json:"language" yaml:"language"`

	// URL is the full request URL.
	URL string `json:"url" yaml:"url"`

	// Body is the raw response text.
	Body string `json:"body" yaml:"body"`

	// Timestamp is when the response was received.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
