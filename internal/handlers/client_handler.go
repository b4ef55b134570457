package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/httpresp"
	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

type ClientHandler struct {
	createUC *workflow.CreateClient
	repo     domain.Repository
}

func NewClientHandler(
	createUC *workflow.CreateClient,
	repo domain.Repository,
) *ClientHandler {
	return &ClientHandler{
		createUC: createUC,
		repo:     repo,
	}
}

type CreateClientRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Handle string `json:"handle"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client, err := h.createUC.Execute(
		c.Request.Context(),
		req.Name,
		req.Email,
		req.Handle,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.SearchClients(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "could not list clients")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	client, err := h.repo.GetClient(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, client)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
