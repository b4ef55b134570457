package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/models"
)

type WorkflowGormRepository struct {
	db *gorm.DB
}

func NewWorkflowGormRepository(db *gorm.DB) *WorkflowGormRepository {
	return &WorkflowGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *WorkflowGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *WorkflowGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}
	return &client, nil
}

func (r *WorkflowGormRepository) SearchClients(
	ctx context.Context,
	query string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(handle) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *WorkflowGormRepository) IncrementClientProjects(
	ctx context.Context,
	clientID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		UpdateColumn("total_projects", gorm.Expr("total_projects + 1")).
		Error
}

func (r *WorkflowGormRepository) AddClientRevenue(
	ctx context.Context,
	clientID uint,
	amount float64,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		UpdateColumn("total_revenue", gorm.Expr("total_revenue + ?", amount)).
		Error
}

// --------------------------------------------------
// Project
// --------------------------------------------------

func (r *WorkflowGormRepository) CreateProject(
	ctx context.Context,
	p *models.Project,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *WorkflowGormRepository) GetProject(
	ctx context.Context,
	id uint,
) (*models.Project, error) {

	var p models.Project
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("project_not_found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *WorkflowGormRepository) GetProjectForUpdate(
	ctx context.Context,
	id uint,
) (*models.Project, error) {

	q := r.db.WithContext(ctx)

	// sqlite has no SELECT ... FOR UPDATE; writes there serialize on
	// the database lock instead.
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var p models.Project
	if err := q.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("project_not_found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *WorkflowGormRepository) UpdateProject(
	ctx context.Context,
	p *models.Project,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *WorkflowGormRepository) ListRecentProjects(
	ctx context.Context,
	limit int,
) ([]models.Project, error) {

	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("start_date DESC").
		Limit(limit).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// --------------------------------------------------
// Communication (append-only)
// --------------------------------------------------

func (r *WorkflowGormRepository) CreateCommunication(
	ctx context.Context,
	comm *models.Communication,
) error {
	return r.db.WithContext(ctx).Create(comm).Error
}

func (r *WorkflowGormRepository) ListCommunications(
	ctx context.Context,
	projectID uint,
) ([]models.Communication, error) {

	var comms []models.Communication
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sent_at DESC").
		Find(&comms).Error; err != nil {
		return nil, err
	}
	return comms, nil
}

// --------------------------------------------------
// Follow-up markers
// --------------------------------------------------

func (r *WorkflowGormRepository) CreateFollowUp(
	ctx context.Context,
	f *models.FollowUp,
) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *WorkflowGormRepository) ListDueFollowUps(
	ctx context.Context,
	now time.Time,
) ([]models.FollowUp, error) {

	var due []models.FollowUp
	if err := r.db.WithContext(ctx).
		Where("sent = ? AND due_at <= ?", false, now).
		Order("due_at ASC").
		Find(&due).Error; err != nil {
		return nil, err
	}
	return due, nil
}

func (r *WorkflowGormRepository) MarkFollowUpSent(
	ctx context.Context,
	id uint,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.FollowUp{}).
		Where("id = ? AND sent = ?", id, false).
		Updates(map[string]any{"sent": true, "sent_at": at}).
		Error
}

// --------------------------------------------------
// Template usage
// --------------------------------------------------

func (r *WorkflowGormRepository) IncrementTemplateUsage(
	ctx context.Context,
	name string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.MessageTemplate{}).
		Where("name = ?", name).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).
		Error
}

func (r *WorkflowGormRepository) ListTemplates(
	ctx context.Context,
) ([]models.MessageTemplate, error) {

	var tpls []models.MessageTemplate
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *WorkflowGormRepository) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Count(&count).Error
	return count, err
}

func (r *WorkflowGormRepository) CountProjectsByStatus(
	ctx context.Context,
	status domain.Status,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

func (r *WorkflowGormRepository) CountClients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Count(&count).Error
	return count, err
}

func (r *WorkflowGormRepository) SumCompletedRevenue(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("status = ?", string(domain.StatusCompleted)).
		Select("SUM(price)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *WorkflowGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&WorkflowGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*WorkflowGormRepository)(nil)
