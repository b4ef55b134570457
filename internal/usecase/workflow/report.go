package workflow

import (
	"context"
	"time"

	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/models"
)

// ReportData is the per-project activity report: header fields plus
// the communication log, most recent first.
type ReportData struct {
	ProjectID   uint                   `json:"project_id"`
	ClientName  string                 `json:"client_name"`
	ClientEmail string                 `json:"client_email"`
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Status      string                 `json:"status"`
	StartDate   time.Time              `json:"start_date"`
	DueDate     *time.Time             `json:"due_date"`
	CompletedAt *time.Time             `json:"completed_at"`
	Price       *float64               `json:"price"`
	Progress    int                    `json:"progress"`
	Comms       []models.Communication `json:"communications"`
}

type ProjectReport struct {
	repo domain.Repository
}

func NewProjectReport(repo domain.Repository) *ProjectReport {
	return &ProjectReport{repo: repo}
}

func (uc *ProjectReport) Execute(
	ctx context.Context,
	projectID uint,
) (*ReportData, error) {

	p, err := uc.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	comms, err := uc.repo.ListCommunications(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return &ReportData{
		ProjectID:   p.ID,
		ClientName:  p.Client.Name,
		ClientEmail: p.Client.Email,
		Type:        p.Type,
		Title:       p.Title,
		Status:      p.Status,
		StartDate:   p.StartDate,
		DueDate:     p.DueDate,
		CompletedAt: p.CompletedAt,
		Price:       p.Price,
		Progress:    p.Progress,
		Comms:       comms,
	}, nil
}
