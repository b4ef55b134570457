package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dataproanalytics/workflow-crm/internal/httpresp"
	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

type DashboardHandler struct {
	summaryUC *workflow.DashboardSummary
}

func NewDashboardHandler(summaryUC *workflow.DashboardSummary) *DashboardHandler {
	return &DashboardHandler{summaryUC: summaryUC}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	summary, err := h.summaryUC.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, summary)
}
