package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/httpresp"
	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

// MessageHandler exposes manual templated messages: same render and
// record path the transition controller uses, template chosen by the
// caller.
type MessageHandler struct {
	sendUC *workflow.SendProjectMessage
}

func NewMessageHandler(sendUC *workflow.SendProjectMessage) *MessageHandler {
	return &MessageHandler{sendUC: sendUC}
}

type SendMessageRequest struct {
	Template         string            `json:"template" binding:"required"`
	Vars             map[string]string `json:"vars"`
	ResponseRequired bool              `json:"response_required"`
}

func (h *MessageHandler) Create(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	comm, err := h.sendUC.Execute(
		c.Request.Context(),
		id,
		req.Template,
		req.Vars,
		req.ResponseRequired,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, comm)
}
