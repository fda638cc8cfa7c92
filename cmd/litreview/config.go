// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/litreview/pkg/types"
)

// loadPipelineConfig assembles the stage configurations from viper, which
// has already merged the config file, LITREVIEW_* env vars, and defaults.
func loadPipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: viper.GetString("search.user_agent"),
			},
			MaxResults: viper.GetInt("search.max_results"),
		},
		LLM: types.LLMConfig{
			Model:      viper.GetString("llm.model"),
			APIKey:     viper.GetString("llm.api_key"),
			Timeout:    viper.GetDuration("llm.timeout"),
			MaxRetries: viper.GetInt("llm.max_retries"),
		},
		Review: types.ReviewConfig{
			Papers: viper.GetInt("review.papers"),
		},
		History: types.HistoryConfig{
			Dir:      viper.GetString("history.dir"),
			Disabled: viper.GetBool("history.disabled"),
		},
	}
}
