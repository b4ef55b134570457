package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/httpresp"
	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

type ProjectHandler struct {
	createUC     *workflow.CreateProject
	transitionUC *workflow.TransitionProject
	repo         domain.Repository
}

func NewProjectHandler(
	createUC *workflow.CreateProject,
	transitionUC *workflow.TransitionProject,
	repo domain.Repository,
) *ProjectHandler {
	return &ProjectHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		repo:         repo,
	}
}

type CreateProjectRequest struct {
	ClientID  uint     `json:"client_id" binding:"required"`
	Type      string   `json:"type" binding:"required"`
	Title     string   `json:"title" binding:"required"`
	Package   string   `json:"package"`
	Price     *float64 `json:"price"`
	DueInDays int      `json:"due_in_days"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.DueInDays == 0 {
		req.DueInDays = 7
	}

	p, err := h.createUC.Execute(
		c.Request.Context(),
		req.ClientID,
		req.Type,
		req.Title,
		req.Package,
		req.Price,
		req.DueInDays,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *ProjectHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	projects, err := h.repo.ListRecentProjects(c.Request.Context(), limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_projects", "could not list projects")
		return
	}

	httpresp.List(c, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	p, err := h.repo.GetProject(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, p)
}

type UpdateStatusRequest struct {
	Status string            `json:"status" binding:"required"`
	Notes  string            `json:"notes"`
	Vars   map[string]string `json:"vars"`
}

func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	p, comm, err := h.transitionUC.Execute(
		c.Request.Context(),
		id,
		domain.Status(req.Status),
		req.Notes,
		req.Vars,
	)
	if err != nil {
		// The status write may already have committed; expose the
		// render failure without pretending the change rolled back.
		if p != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"project":    p,
				"error_code": "message_failed",
				"message":    err.Error(),
			})
			return
		}
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"project":       p,
		"communication": comm,
	})
}

func (h *ProjectHandler) Communications(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.repo.GetProject(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	comms, err := h.repo.ListCommunications(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_list_communications", "could not list communications")
		return
	}

	httpresp.List(c, comms)
}
