package project

import (
	"context"
	"time"

	"github.com/dataproanalytics/workflow-crm/internal/models"
)

// Repository is the entity store: durable CRUD over clients, projects,
// communications, templates and follow-up markers. Communications are
// append-only; no update or delete is exposed.
type Repository interface {
	// -------- Client --------
	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	SearchClients(
		ctx context.Context,
		query string,
	) ([]models.Client, error)

	IncrementClientProjects(
		ctx context.Context,
		clientID uint,
	) error

	AddClientRevenue(
		ctx context.Context,
		clientID uint,
		amount float64,
	) error

	// -------- Project --------
	CreateProject(
		ctx context.Context,
		p *models.Project,
	) error

	GetProject(
		ctx context.Context,
		id uint,
	) (*models.Project, error)

	// GetProjectForUpdate locks the row for the enclosing transaction
	// so concurrent transitions on the same project serialize.
	GetProjectForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Project, error)

	UpdateProject(
		ctx context.Context,
		p *models.Project,
	) error

	ListRecentProjects(
		ctx context.Context,
		limit int,
	) ([]models.Project, error)

	// -------- Communication --------
	CreateCommunication(
		ctx context.Context,
		comm *models.Communication,
	) error

	ListCommunications(
		ctx context.Context,
		projectID uint,
	) ([]models.Communication, error)

	// -------- Follow-up markers --------
	CreateFollowUp(
		ctx context.Context,
		f *models.FollowUp,
	) error

	ListDueFollowUps(
		ctx context.Context,
		now time.Time,
	) ([]models.FollowUp, error)

	MarkFollowUpSent(
		ctx context.Context,
		id uint,
		at time.Time,
	) error

	// -------- Template usage --------
	IncrementTemplateUsage(
		ctx context.Context,
		name string,
	) error

	ListTemplates(
		ctx context.Context,
	) ([]models.MessageTemplate, error)

	// -------- Aggregates --------
	CountProjects(ctx context.Context) (int64, error)
	CountProjectsByStatus(ctx context.Context, status Status) (int64, error)
	CountClients(ctx context.Context) (int64, error)
	SumCompletedRevenue(ctx context.Context) (float64, error)

	// -------- Transactions --------
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
