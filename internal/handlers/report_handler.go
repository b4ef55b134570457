package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dataproanalytics/workflow-crm/internal/httpresp"
	"github.com/dataproanalytics/workflow-crm/internal/reports"
	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

type ReportHandler struct {
	reportUC  *workflow.ProjectReport
	generator *reports.Generator
}

func NewReportHandler(
	reportUC *workflow.ProjectReport,
	generator *reports.Generator,
) *ReportHandler {
	return &ReportHandler{
		reportUC:  reportUC,
		generator: generator,
	}
}

func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	report, err := h.reportUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, report)
}

// Markdown renders the report as a Markdown document. Pass ?save=1 to
// also write it under the configured reports directory.
func (h *ReportHandler) Markdown(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	report, err := h.reportUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	doc := h.generator.BuildMarkdown(report)

	if c.Query("save") == "1" {
		path, err := h.generator.Save(report, doc)
		if err != nil {
			httpresp.OK(c, gin.H{"markdown": doc, "save_error": err.Error()})
			return
		}
		c.Header("X-Report-Path", path)
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc))
}
