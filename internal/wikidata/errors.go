// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikidata

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTerm is returned when a search is attempted with an empty term.
	ErrEmptyTerm = errors.New("search term is empty")

	// ErrNoIDs is returned when an entity fetch names no ids.
	ErrNoIDs = errors.New("no entity ids given")
)

// TransportError reports that the request could not be sent or that the
// connection failed before a response arrived (DNS, TCP, TLS, cancellation).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("requesting %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseReadError reports that response headers were received but the
// body could not be read to the end.
type ResponseReadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ResponseReadError) Error() string {
	return fmt.Sprintf("reading response from %s (HTTP %d): %v", e.URL, e.StatusCode, e.Err)
}

func (e *ResponseReadError) Unwrap() error { return e.Err }
