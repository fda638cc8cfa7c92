// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Run-level failure classes. Callers branch with errors.Is; wrapping sites
// attach the transport or provider detail.
var (
	// ErrMissingAPIKey indicates a blank or absent LLM credential. Raised
	// before any network work.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrNoCompatibleModel indicates that every candidate model failed its
	// availability probe. Terminal for the run.
	ErrNoCompatibleModel = errors.New("no compatible model")

	// ErrSourceUnavailable indicates a transport or parse failure talking
	// to the paper search index. Terminal for the run.
	ErrSourceUnavailable = errors.New("paper source unavailable")
)
