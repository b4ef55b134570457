package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/httpresp"
)

// TemplateHandler is a read-only view of the catalog with persisted
// usage counts. The catalog itself is not editable at runtime.
type TemplateHandler struct {
	repo domain.Repository
}

func NewTemplateHandler(repo domain.Repository) *TemplateHandler {
	return &TemplateHandler{repo: repo}
}

func (h *TemplateHandler) List(c *gin.Context) {
	tpls, err := h.repo.ListTemplates(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_templates", "could not list templates")
		return
	}

	httpresp.List(c, tpls)
}
