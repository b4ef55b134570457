package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/dataproanalytics/workflow-crm/internal/audit"
	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/models"
)

type CreateProject struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateProject(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateProject {
	return &CreateProject{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates a project under an existing client. The project
// starts now, is due dueInDays later, and opens directly in the
// active status.
func (uc *CreateProject) Execute(
	ctx context.Context,
	clientID uint,
	projectType string,
	title string,
	packageTier string,
	price *float64,
	dueInDays int,
) (*models.Project, error) {

	projectType = strings.TrimSpace(projectType)
	title = strings.TrimSpace(title)

	if projectType == "" || title == "" || dueInDays < 0 {
		return nil, httperr.ErrBusiness("validation_error")
	}

	client, err := uc.repo.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	due := start.AddDate(0, 0, dueInDays)

	p := &models.Project{
		ClientID:  client.ID,
		Type:      projectType,
		Title:     title,
		Package:   packageTier,
		Price:     price,
		Status:    string(domain.StatusActive),
		StartDate: start,
		DueDate:   &due,
	}

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateProject(ctx, p); err != nil {
			return err
		}
		return tx.IncrementClientProjects(ctx, client.ID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "project_created",
		Entity:   "project",
		EntityID: &p.ID,
	})

	return p, nil
}
