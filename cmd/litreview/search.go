// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/arxiv"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search arXiv for candidate papers",
	Long: `Search queries the arXiv API for papers matching a research topic and
prints them in the index's relevance order, without summarization.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		maxResults, _ := cmd.Flags().GetInt("max-results")
		asJSON, _ := cmd.Flags().GetBool("json")

		if topic == "" {
			return fmt.Errorf("--topic is required")
		}

		cfg := loadPipelineConfig()
		if maxResults <= 0 {
			maxResults = cfg.Search.MaxResults
		}
		client := arxiv.NewClient(cfg.Search)

		papers, err := client.Search(cmd.Context(), topic, maxResults)
		if err != nil {
			return err
		}

		if asJSON {
			return arxiv.FormatJSON(papers, os.Stdout)
		}
		arxiv.FormatTable(papers, os.Stdout)
		return nil
	},
}

func init() {
	searchCmd.Flags().String("topic", "", "free-text research topic")
	searchCmd.Flags().Int("max-results", 20, "maximum number of results to return")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
