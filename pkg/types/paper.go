// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the litreview pipeline.
package types

import "time"

// Paper represents one academic paper as returned by the bibliographic
// search index. Values are never mutated after construction.
type Paper struct {
	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Published is the publication or preprint date (day precision).
	Published time.Time `json:"published" yaml:"published"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// PDFURL points at the paper's PDF or source page.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
}

// ReviewResult pairs one paper with its summary. Failed results carry a
// "Summary failed: <reason>" marker in Summary instead of model output.
type ReviewResult struct {
	Paper   Paper  `json:"paper" yaml:"paper"`
	Summary string `json:"summary" yaml:"summary"`
	Failed  bool   `json:"failed" yaml:"failed"`
}

// ReviewRun is the complete output of one literature-review run, in the
// shape the exporters and the history store consume.
type ReviewRun struct {
	// Topic is the research topic the run was asked about.
	Topic string `json:"topic" yaml:"topic"`

	// Model is the LLM model identifier used for every summary in the run.
	Model string `json:"model" yaml:"model"`

	// Requested is the number of papers asked for.
	Requested int `json:"requested" yaml:"requested"`

	// GeneratedAt is when the run completed.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Results holds one entry per reviewed paper, in source order.
	Results []ReviewResult `json:"results" yaml:"results"`
}

// RunSummary is a history-listing row for a stored run.
type RunSummary struct {
	ID        int64     `json:"id" yaml:"id"`
	Topic     string    `json:"topic" yaml:"topic"`
	Model     string    `json:"model" yaml:"model"`
	Requested int       `json:"requested" yaml:"requested"`
	Papers    int       `json:"papers" yaml:"papers"`
	Failed    int       `json:"failed" yaml:"failed"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
