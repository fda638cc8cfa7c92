// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "litreview/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the paper search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of candidates to request (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LLMConfig holds settings for stages that call the Generative AI API.
type LLMConfig struct {
	// Model is an explicit model identifier. When set it bypasses
	// candidate resolution entirely and is trusted as-is.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Timeout is the per-request timeout for AI API calls.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retry attempts on rate-limit or
	// overload responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ReviewConfig holds settings for the review pipeline.
type ReviewConfig struct {
	// Papers is the default number of papers to review per run (default 5).
	Papers int `json:"papers" yaml:"papers"`
}

// HistoryConfig holds settings for the run history store.
type HistoryConfig struct {
	// Dir is the directory holding reviews.db (default "history").
	Dir string `json:"dir" yaml:"dir"`

	// Disabled turns off run persistence entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	LLM     LLMConfig     `json:"llm" yaml:"llm"`
	Review  ReviewConfig  `json:"review" yaml:"review"`
	History HistoryConfig `json:"history" yaml:"history"`
}
