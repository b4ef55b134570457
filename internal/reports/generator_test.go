package reports

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataproanalytics/workflow-crm/internal/models"
	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

func sampleReport() *workflow.ReportData {
	price := 599.0
	due := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	return &workflow.ReportData{
		ProjectID:   42,
		ClientName:  "John Smith",
		ClientEmail: "john@example.com",
		Type:        "Market Research",
		Title:       "E-commerce Market Analysis",
		Status:      "completed",
		StartDate:   due.AddDate(0, 0, -7),
		DueDate:     &due,
		Price:       &price,
		Progress:    100,
		Comms: []models.Communication{
			{
				Kind:    "delivery_notification",
				Subject: "Project Complete - E-commerce Market Analysis",
				SentAt:  due,
			},
		},
	}
}

func TestBuildMarkdown(t *testing.T) {
	g := NewGenerator(t.TempDir())
	doc := g.BuildMarkdown(sampleReport())

	assert.Contains(t, doc, "# Project Report: E-commerce Market Analysis")
	assert.Contains(t, doc, "**Client:** John Smith (john@example.com)")
	assert.Contains(t, doc, "**Status:** completed")
	assert.Contains(t, doc, "**Price:** $599.00")
	assert.Contains(t, doc, "| 2026-09-07 00:00 | delivery_notification |")
}

func TestBuildMarkdownNoComms(t *testing.T) {
	g := NewGenerator(t.TempDir())

	r := sampleReport()
	r.Comms = nil

	doc := g.BuildMarkdown(r)
	assert.Contains(t, doc, "No communications recorded yet.")
}

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)

	r := sampleReport()
	doc := g.BuildMarkdown(r)

	path, err := g.Save(r, doc)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(written))
}
