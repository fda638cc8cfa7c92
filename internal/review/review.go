// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review orchestrates the literature-review pipeline: fetch a
// surplus of candidate papers, truncate to the requested count, and
// summarize each one in order with a single LLM call per paper.
package review

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/litreview/pkg/types"
)

// PaperSource fetches ranked candidate papers for a topic. Implemented by
// *arxiv.Client; tests supply a mock.
type PaperSource interface {
	Search(ctx context.Context, topic string, maxResults int) ([]types.Paper, error)
}

// TextGenerator issues one prompt to the LLM and returns the raw text
// response. Implemented by *gemini.Client; tests supply a mock.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// Summarize renders the summarization prompt for paper and issues a single
// synchronous call to the LLM. The raw response is returned as-is; an empty
// string is permitted.
func Summarize(ctx context.Context, gen TextGenerator, model string, paper types.Paper) (string, error) {
	prompt, err := RenderPrompt(paper)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return gen.GenerateText(ctx, model, prompt)
}

// fetchCount returns how many candidates to request for a given paper
// count: three times the requested number, floor 10. The surplus leaves
// room for down-selection without a second fetch.
func fetchCount(requested int) int {
	if n := requested * 3; n > 10 {
		return n
	}
	return 10
}

// Run executes one literature-review run: fetch candidates, truncate to
// requested preserving source order, then summarize each paper
// sequentially with the resolved model.
//
// A source failure aborts the run before any summarization. A failed
// summary does not: the paper's result carries a "Summary failed: <reason>"
// marker and Failed=true, and the batch continues. progress, when non-nil,
// is called after each paper with (done, total); it is an observation hook,
// not a control dependency. Human-readable status lines go to w.
func Run(ctx context.Context, source PaperSource, gen TextGenerator, model, topic string, requested int, progress func(done, total int), w io.Writer) ([]types.ReviewResult, error) {
	if requested <= 0 {
		return nil, fmt.Errorf("requested paper count must be positive, got %d", requested)
	}

	papers, err := source.Search(ctx, topic, fetchCount(requested))
	if err != nil {
		return nil, fmt.Errorf("fetching papers: %w", err)
	}
	if len(papers) > requested {
		papers = papers[:requested]
	}

	results := make([]types.ReviewResult, 0, len(papers))
	for i, p := range papers {
		fmt.Fprintf(w, "summarizing %d/%d: %s\n", i+1, len(papers), p.Title)

		summary, err := Summarize(ctx, gen, model, p)
		r := types.ReviewResult{Paper: p, Summary: summary}
		if err != nil {
			r.Summary = fmt.Sprintf("Summary failed: %v", err)
			r.Failed = true
			fmt.Fprintf(w, "failed  %s: %v\n", p.Title, err)
		}
		results = append(results, r)

		if progress != nil {
			progress(i+1, len(papers))
		}
	}

	return results, nil
}
