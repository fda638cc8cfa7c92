// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders a completed review run as JSON, YAML, or delimited
// plain text. Records render in pipeline order, so re-exporting the same
// run always produces the same document.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litreview/pkg/types"
)

// Format selects the export rendering.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json, yaml, or text)", s)
	}
}

// Write renders run to w in the given format.
func Write(run types.ReviewRun, format Format, w io.Writer) error {
	switch format {
	case FormatJSON:
		return WriteJSON(run, w)
	case FormatYAML:
		return WriteYAML(run, w)
	case FormatText:
		return WriteText(run, w)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// WriteJSON renders run as indented JSON.
func WriteJSON(run types.ReviewRun, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// WriteYAML renders run as YAML.
func WriteYAML(run types.ReviewRun, w io.Writer) error {
	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteText renders run as a delimited plain-text document: a header block,
// a banner, then one section per paper separated by a short rule.
func WriteText(run types.ReviewRun, w io.Writer) error {
	banner := strings.Repeat("=", 50)
	rule := strings.Repeat("-", 20)

	fmt.Fprintln(w, "Literature Review Results")
	fmt.Fprintf(w, "Topic: %s\n", run.Topic)
	fmt.Fprintf(w, "Generated: %s\n", run.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Papers Requested: %d\n", run.Requested)
	fmt.Fprintf(w, "Model: %s\n", run.Model)
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "PAPER SUMMARIES")
	fmt.Fprintln(w, banner)

	for i, r := range run.Results {
		fmt.Fprintf(w, "\nPaper %d: %s\n%s\n%s\n\n", i+1, r.Paper.Title, rule, r.Summary)
	}
	return nil
}

// FileName derives an export file name from the run's topic and timestamp,
// e.g. "literature_review_graph_neural_networks_2026-08-24_10-30-00.json".
func FileName(run types.ReviewRun, format Format) string {
	topic := strings.ReplaceAll(strings.TrimSpace(run.Topic), " ", "_")
	ts := run.GeneratedAt.Format("2006-01-02_15-04-05")
	ext := string(format)
	if format == FormatText {
		ext = "txt"
	}
	return fmt.Sprintf("literature_review_%s_%s.%s", topic, ts, ext)
}
