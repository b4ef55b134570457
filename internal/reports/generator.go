package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

// Generator turns a project report into a Markdown document suitable
// for handing to a client or archiving alongside deliverables.
type Generator struct {
	outputDir string
}

func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

func (g *Generator) BuildMarkdown(r *workflow.ReportData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Project Report: %s\n\n", r.Title)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", time.Now().Format("January 2, 2006"))

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "- **Client:** %s (%s)\n", r.ClientName, r.ClientEmail)
	fmt.Fprintf(&b, "- **Service:** %s\n", r.Type)
	fmt.Fprintf(&b, "- **Status:** %s\n", r.Status)
	fmt.Fprintf(&b, "- **Started:** %s\n", r.StartDate.Format("2006-01-02"))
	if r.DueDate != nil {
		fmt.Fprintf(&b, "- **Due:** %s\n", r.DueDate.Format("2006-01-02"))
	}
	if r.CompletedAt != nil {
		fmt.Fprintf(&b, "- **Completed:** %s\n", r.CompletedAt.Format("2006-01-02"))
	}
	if r.Price != nil {
		fmt.Fprintf(&b, "- **Price:** $%.2f\n", *r.Price)
	}
	fmt.Fprintf(&b, "- **Progress:** %d%%\n\n", r.Progress)

	b.WriteString("## Communication Log\n\n")
	if len(r.Comms) == 0 {
		b.WriteString("No communications recorded yet.\n")
	} else {
		b.WriteString("| Sent | Type | Subject |\n")
		b.WriteString("|------|------|---------|\n")
		for _, c := range r.Comms {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				c.SentAt.Format("2006-01-02 15:04"),
				c.Kind,
				strings.ReplaceAll(c.Subject, "|", "\\|"),
			)
		}
	}

	b.WriteString("\n---\n*Prepared with the workflow CRM report generator.*\n")
	return b.String()
}

// Save writes the document under the output directory and returns the
// full path.
func (g *Generator) Save(r *workflow.ReportData, content string) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("project_%d_report_%s.md",
		r.ProjectID, time.Now().Format("20060102_150405"))
	path := filepath.Join(g.outputDir, name)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
