package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/templates"
)

// writeError maps usecase errors onto the HTTP surface. Every error in
// the workflow core is recoverable by the caller.
func writeError(c *gin.Context, err error) {
	var mv templates.MissingVariableError
	if errors.As(err, &mv) {
		httperr.UnprocessableEntity(c, "missing_variable", mv.Error())
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case "validation_error":
			httperr.BadRequest(c, code, "invalid request")
		case "client_not_found", "project_not_found", "template_not_found":
			httperr.NotFound(c, code, "resource not found")
		default:
			httperr.BadRequest(c, code, code)
		}
		return
	}

	httperr.Internal(c, "internal_error", "unexpected error")
}
