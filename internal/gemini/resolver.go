// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gemini

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/litreview/pkg/types"
)

// CandidateModels is the static priority list of model identifiers tried
// during resolution, most capable and cheapest first. An explicit model
// choice from the user bypasses this list entirely.
var CandidateModels = []string{
	"gemini-1.5-flash-8b",
	"gemini-1.5-flash",
	"gemini-2.0-flash-lite",
	"gemini-2.0-flash",
	"gemini-1.5-pro",
}

// Prober exposes the model-discovery surface of the API client so tests
// can supply a mock.
type Prober interface {
	ListModels(ctx context.Context) ([]string, error)
	GetModel(ctx context.Context, model string) error
}

// Resolve returns the model identifier to use for a run. A non-empty
// override is returned unchanged without any enumeration or probing: an
// explicit choice is never second-guessed. Otherwise candidates are walked
// in priority order and the first usable one wins.
//
// Enumeration is best-effort: when the listing fails or comes back empty,
// every candidate is treated as plausible and probed directly. When the
// listing is non-empty it acts as a membership filter. Probe failures are
// swallowed and the walk continues; resolution only fails, with
// types.ErrNoCompatibleModel, once every candidate is exhausted.
//
// Progress lines for the candidate walk are written to w.
func Resolve(ctx context.Context, p Prober, candidates []string, override string, w io.Writer) (string, error) {
	if override != "" {
		return override, nil
	}
	if len(candidates) == 0 {
		candidates = CandidateModels
	}

	available, err := p.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(w, "model listing unavailable, probing all candidates: %v\n", err)
		available = nil
	}

	listed := make(map[string]bool, len(available))
	for _, m := range available {
		listed[m] = true
	}

	for _, cand := range candidates {
		if len(listed) > 0 && !listed[cand] {
			fmt.Fprintf(w, "skip  %s: not in listed models\n", cand)
			continue
		}
		if err := p.GetModel(ctx, cand); err != nil {
			fmt.Fprintf(w, "probe %s: %v\n", cand, err)
			continue
		}
		fmt.Fprintf(w, "using %s\n", cand)
		return cand, nil
	}

	return "", fmt.Errorf("%w: exhausted %d candidates", types.ErrNoCompatibleModel, len(candidates))
}
