// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/arxiv"
	"github.com/pdiddy/litreview/internal/export"
	"github.com/pdiddy/litreview/internal/gemini"
	"github.com/pdiddy/litreview/internal/history"
	"github.com/pdiddy/litreview/internal/review"
	"github.com/pdiddy/litreview/pkg/types"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run a literature review on a research topic",
	Long: `Review fetches a surplus of arXiv candidates for the topic, keeps the
requested number in relevance order, and summarizes each paper with one
Gemini call. A paper whose summary fails is marked in the output; it never
aborts the rest of the batch.

Without --model the Gemini model is resolved by walking a priority list of
candidates; an explicit --model is trusted as-is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		papers, _ := cmd.Flags().GetInt("papers")
		override, _ := cmd.Flags().GetString("model")
		keyFlag, _ := cmd.Flags().GetString("api-key")
		formatName, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		if topic == "" {
			return fmt.Errorf("--topic is required")
		}

		cfg := loadPipelineConfig()
		if papers <= 0 {
			papers = cfg.Review.Papers
		}
		if override == "" {
			override = cfg.LLM.Model
		}

		format, err := export.ParseFormat(formatName)
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		client, err := gemini.NewClient(resolveAPIKey(keyFlag, cfg.LLM.APIKey))
		if err != nil {
			return fmt.Errorf("registering Gemini credential: %w", err)
		}
		client.HTTPClient = &http.Client{Timeout: cfg.LLM.Timeout}
		client.MaxRetries = cfg.LLM.MaxRetries

		model, err := gemini.Resolve(ctx, client, nil, override, os.Stderr)
		if err != nil {
			return err
		}

		source := arxiv.NewClient(cfg.Search)

		results, err := review.Run(ctx, source, client, model, topic, papers, nil, os.Stderr)
		if err != nil {
			return err
		}

		run := types.ReviewRun{
			Topic:       topic,
			Model:       model,
			Requested:   papers,
			GeneratedAt: time.Now().UTC(),
			Results:     results,
		}

		if err := writeRun(run, format, output); err != nil {
			return err
		}

		if !noHistory && !cfg.History.Disabled {
			if err := saveToHistory(cmd, cfg.History, run); err != nil {
				// History is a convenience; a failed save must not fail the run.
				fmt.Fprintf(os.Stderr, "warning: could not save run to history: %v\n", err)
			}
		}
		return nil
	},
}

// writeRun renders run to the named file, or to stdout when path is empty.
func writeRun(run types.ReviewRun, format export.Format, path string) error {
	if path == "" {
		return export.Write(run, format, os.Stdout)
	}
	if path == "auto" {
		path = export.FileName(run, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := export.Write(run, format, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}

func saveToHistory(cmd *cobra.Command, cfg types.HistoryConfig, run types.ReviewRun) error {
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(cmd.Context(), run)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved run %d to history\n", id)
	return nil
}

func init() {
	reviewCmd.Flags().String("topic", "", "research topic to review")
	reviewCmd.Flags().Int("papers", 0, "number of papers to review (default from config, 5)")
	reviewCmd.Flags().String("model", "", "explicit Gemini model identifier, skips resolution")
	reviewCmd.Flags().String("api-key", "", "Gemini API key (overrides config, .secrets/, and GEMINI_API_KEY)")
	reviewCmd.Flags().String("format", "text", "output format: json, yaml, or text")
	reviewCmd.Flags().String("output", "", "output file path; \"auto\" derives a name from topic and time (default stdout)")
	reviewCmd.Flags().Bool("no-history", false, "do not save this run to history")

	rootCmd.AddCommand(reviewCmd)
}
