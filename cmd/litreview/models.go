// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/gemini"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show which Gemini model the credential resolves to",
	Long: `Models walks the priority candidate list against the configured
credential, printing each skip and probe, and reports the model a review
run would use. With --model the override is reported without any probing,
matching review's behavior.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyFlag, _ := cmd.Flags().GetString("api-key")
		override, _ := cmd.Flags().GetString("model")

		cfg := loadPipelineConfig()
		if override == "" {
			override = cfg.LLM.Model
		}
		if override != "" {
			fmt.Printf("explicit override: %s\n", override)
			return nil
		}

		client, err := gemini.NewClient(resolveAPIKey(keyFlag, cfg.LLM.APIKey))
		if err != nil {
			return fmt.Errorf("registering Gemini credential: %w", err)
		}
		client.HTTPClient = &http.Client{Timeout: cfg.LLM.Timeout}

		model, err := gemini.Resolve(cmd.Context(), client, nil, "", os.Stderr)
		if err != nil {
			return err
		}
		fmt.Printf("resolved model: %s\n", model)
		return nil
	},
}

func init() {
	modelsCmd.Flags().String("api-key", "", "Gemini API key (overrides .secrets/ and GEMINI_API_KEY)")
	modelsCmd.Flags().String("model", "", "explicit model identifier to report without probing")

	rootCmd.AddCommand(modelsCmd)
}
