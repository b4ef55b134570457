package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dataproanalytics/workflow-crm/internal/audit"
	"github.com/dataproanalytics/workflow-crm/internal/config"
	dbpkg "github.com/dataproanalytics/workflow-crm/internal/db"
	infraRepo "github.com/dataproanalytics/workflow-crm/internal/infra/repository"
	"github.com/dataproanalytics/workflow-crm/internal/middleware"
	"github.com/dataproanalytics/workflow-crm/internal/routes"
	"github.com/dataproanalytics/workflow-crm/internal/scheduler"
	"github.com/dataproanalytics/workflow-crm/internal/templates"
	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	// Follow-up poller: the collaborator that acts on due markers.
	repo := infraRepo.NewWorkflowGormRepository(db)
	auditDispatcher := audit.NewDispatcher(audit.New(db))
	sendMessageUC := workflow.NewSendProjectMessage(
		repo,
		templates.NewRenderer(templates.BuiltinCatalog()),
		auditDispatcher,
		cfg.SellerName,
	)
	followUps := scheduler.New(
		repo,
		sendMessageUC,
		auditDispatcher,
		time.Duration(cfg.FollowUpPollMn)*time.Minute,
	)
	followUps.Start()
	defer followUps.Stop()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
