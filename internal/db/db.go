package db

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dataproanalytics/workflow-crm/internal/config"
	"github.com/dataproanalytics/workflow-crm/internal/models"
	"github.com/dataproanalytics/workflow-crm/internal/templates"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := SeedTemplates(db, templates.BuiltinCatalog()); err != nil {
		log.Fatalf("failed to seed templates: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Project{},
		&models.Communication{},
		&models.MessageTemplate{},
		&models.FollowUp{},
		&models.AuditLog{},
	)
}

// SeedTemplates mirrors the built-in catalog into the message_templates
// table so usage counts persist. Existing rows keep their counts.
func SeedTemplates(db *gorm.DB, catalog templates.Catalog) error {
	for _, t := range catalog.List() {
		varsJSON, err := json.Marshal(t.Variables)
		if err != nil {
			return err
		}

		row := models.MessageTemplate{
			Name:      t.Name,
			Category:  t.Category,
			Subject:   t.Subject,
			Body:      t.Body,
			Variables: string(varsJSON),
		}

		if err := db.
			Where(models.MessageTemplate{Name: t.Name}).
			Attrs(row).
			FirstOrCreate(&models.MessageTemplate{}).Error; err != nil {
			return err
		}
	}
	return nil
}
