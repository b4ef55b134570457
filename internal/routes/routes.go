package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dataproanalytics/workflow-crm/internal/audit"
	"github.com/dataproanalytics/workflow-crm/internal/config"
	"github.com/dataproanalytics/workflow-crm/internal/handlers"
	infraRepo "github.com/dataproanalytics/workflow-crm/internal/infra/repository"
	"github.com/dataproanalytics/workflow-crm/internal/reports"
	"github.com/dataproanalytics/workflow-crm/internal/templates"
	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewWorkflowGormRepository(db)

	catalog := templates.BuiltinCatalog()
	renderer := templates.NewRenderer(catalog)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	generator := reports.NewGenerator(cfg.ReportsDir)

	// ======================================================
	// USE CASES — WORKFLOW
	// ======================================================
	createClientUC := workflow.NewCreateClient(repo, auditDispatcher)
	createProjectUC := workflow.NewCreateProject(repo, auditDispatcher)

	sendMessageUC := workflow.NewSendProjectMessage(
		repo,
		renderer,
		auditDispatcher,
		cfg.SellerName,
	)

	transitionUC := workflow.NewTransitionProject(
		repo,
		sendMessageUC,
		auditDispatcher,
	)

	reportUC := workflow.NewProjectReport(repo)
	dashboardUC := workflow.NewDashboardSummary(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(createClientUC, repo)
	projectHandler := handlers.NewProjectHandler(createProjectUC, transitionUC, repo)
	messageHandler := handlers.NewMessageHandler(sendMessageUC)
	reportHandler := handlers.NewReportHandler(reportUC, generator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	templateHandler := handlers.NewTemplateHandler(repo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients", clientHandler.List)
		api.GET("/clients/:id", clientHandler.Get)

		api.POST("/projects", projectHandler.Create)
		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.Get)
		api.PATCH("/projects/:id/status", projectHandler.UpdateStatus)
		api.GET("/projects/:id/communications", projectHandler.Communications)

		api.POST("/projects/:id/messages", messageHandler.Create)

		api.GET("/projects/:id/report", reportHandler.Get)
		api.GET("/projects/:id/report/markdown", reportHandler.Markdown)

		api.GET("/templates", templateHandler.List)
		api.GET("/dashboard", dashboardHandler.Get)
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
