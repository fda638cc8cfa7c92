// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/export"
	"github.com/pdiddy/litreview/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored review runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.ListRuns(cmd.Context())
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No stored runs.")
			return nil
		}

		fmt.Printf("%-5s  %-40s  %-22s  %-7s  %s\n", "ID", "Topic", "Model", "Papers", "Created")
		fmt.Println(strings.Repeat("-", 100))
		for _, r := range runs {
			topic := r.Topic
			if len(topic) > 40 {
				topic = topic[:37] + "..."
			}
			papers := fmt.Sprintf("%d", r.Papers)
			if r.Failed > 0 {
				papers = fmt.Sprintf("%d (%d failed)", r.Papers, r.Failed)
			}
			fmt.Printf("%-5d  %-40s  %-22s  %-7s  %s\n",
				r.ID, topic, r.Model, papers, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Re-export a stored review run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q", args[0])
		}

		formatName, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(formatName)
		if err != nil {
			return err
		}

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.GetRun(cmd.Context(), id)
		if err != nil {
			return err
		}
		return export.Write(run, format, os.Stdout)
	},
}

func openHistory() (*history.Store, error) {
	return history.NewStore(loadPipelineConfig().History)
}

func init() {
	historyShowCmd.Flags().String("format", "text", "output format: json, yaml, or text")

	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
