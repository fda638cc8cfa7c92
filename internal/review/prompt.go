// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/pdiddy/litreview/pkg/types"
)

// summaryPromptTmpl is the prompt sent to the LLM for each paper. It embeds
// the paper metadata and the verbatim abstract as ground truth, then pins
// the response to a fixed section layout. The layout is a human-readable
// contract: downstream consumers render it, they never parse it field by
// field, which is why JSON output is explicitly forbidden.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`You are a research assistant specialized in summarizing academic papers.
Summarize the paper below, treating the abstract as ground truth. Output the following **exact structured format**:

---
### Title: {{.Title}}

**Author Names:** {{.Authors}}

**Publication Details:** {{.Published}} (arXiv)

**Abstract:** {{.Abstract}}

**Description:** <summary in your own words>

**Scope:** <scope of research>

**Methodology:** <technical approaches, models, algorithms>

**Research Gaps:** <limitations / gaps>

**Research Questions:** <questions addressed>

**Important Points:**
- Point 1
- Point 2
...

**Important Sentences (direct quotes):**
1. "..."
2. "..."

**Results & Conclusion:** <findings, statistics, contributions>

**Advantages:** <strengths>
**Disadvantages:** <limitations>
---

Always output in this exact structure. Do NOT return JSON. Do NOT include tool logs.`))

// promptData holds the pre-formatted fields the template interpolates.
type promptData struct {
	Title     string
	Authors   string
	Published string
	Abstract  string
}

// RenderPrompt builds the summarization prompt for one paper. It is a pure
// function of the paper's title, authors, date, and abstract: identical
// inputs produce a byte-identical prompt.
func RenderPrompt(paper types.Paper) (string, error) {
	data := promptData{
		Title:    paper.Title,
		Authors:  strings.Join(paper.Authors, ", "),
		Abstract: paper.Abstract,
	}
	if !paper.Published.IsZero() {
		data.Published = paper.Published.Format("2006-01-02")
	}

	var buf bytes.Buffer
	if err := summaryPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
