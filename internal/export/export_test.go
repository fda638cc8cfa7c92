// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/litreview/pkg/types"
)

func sampleRun() types.ReviewRun {
	return types.ReviewRun{
		Topic:       "graph neural networks",
		Model:       "gemini-1.5-flash",
		Requested:   2,
		GeneratedAt: time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
		Results: []types.ReviewResult{
			{
				Paper:   types.Paper{Title: "First Paper", Authors: []string{"Alice"}},
				Summary: "### Title: First Paper\n**Description:** ...",
			},
			{
				Paper:   types.Paper{Title: "Second Paper", Authors: []string{"Bob"}},
				Summary: "Summary failed: quota exceeded",
				Failed:  true,
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"Text", FormatText, false},
		{"csv", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleRun(), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var got types.ReviewRun
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshaling export: %v", err)
	}
	if got.Topic != "graph neural networks" || len(got.Results) != 2 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if !got.Results[1].Failed {
		t.Error("failure flag lost in export")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(sampleRun(), &buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, strings.Repeat("=", 50)) {
		t.Error("text export missing 50-char banner")
	}
	if strings.Count(out, strings.Repeat("-", 20)) != 2 {
		t.Errorf("text export should have one 20-char rule per paper:\n%s", out)
	}
	if !strings.Contains(out, "Topic: graph neural networks") {
		t.Error("text export missing topic line")
	}
	if !strings.Contains(out, "Papers Requested: 2") {
		t.Error("text export missing requested count")
	}
	if !strings.Contains(out, "Summary failed: quota exceeded") {
		t.Error("text export missing degraded summary")
	}

	// Order is stable: Paper 1 before Paper 2.
	if strings.Index(out, "Paper 1: First Paper") > strings.Index(out, "Paper 2: Second Paper") {
		t.Error("papers exported out of order")
	}
}

func TestWriteTextIsReproducible(t *testing.T) {
	run := sampleRun()

	var first, second bytes.Buffer
	if err := WriteText(run, &first); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if err := WriteText(run, &second); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if first.String() != second.String() {
		t.Error("re-rendering the same run produced different text")
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(sampleRun(), &buf); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "topic: graph neural networks") {
		t.Errorf("yaml export missing topic:\n%s", out)
	}
	if !strings.Contains(out, "failed: true") {
		t.Errorf("yaml export missing failure flag:\n%s", out)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "literature_review_graph_neural_networks_2026-08-24_10-30-00.json"},
		{FormatYAML, "literature_review_graph_neural_networks_2026-08-24_10-30-00.yaml"},
		{FormatText, "literature_review_graph_neural_networks_2026-08-24_10-30-00.txt"},
	}
	for _, tt := range tests {
		if got := FileName(sampleRun(), tt.format); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}
