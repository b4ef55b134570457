package workflow

import (
	"context"

	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/dto"
)

const recentProjectsLimit = 10

type Summary struct {
	TotalProjects     int64                  `json:"total_projects"`
	ActiveProjects    int64                  `json:"active_projects"`
	CompletedProjects int64                  `json:"completed_projects"`
	TotalRevenue      float64                `json:"total_revenue"`
	TotalClients      int64                  `json:"total_clients"`
	RecentProjects    []dto.RecentProjectDTO `json:"recent_projects"`
}

// DashboardSummary is a pure read path over the store; revenue counts
// completed projects only, null prices as zero.
type DashboardSummary struct {
	repo domain.Repository
}

func NewDashboardSummary(repo domain.Repository) *DashboardSummary {
	return &DashboardSummary{repo: repo}
}

func (uc *DashboardSummary) Execute(ctx context.Context) (*Summary, error) {

	total, err := uc.repo.CountProjects(ctx)
	if err != nil {
		return nil, err
	}

	active, err := uc.repo.CountProjectsByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}

	completed, err := uc.repo.CountProjectsByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	revenue, err := uc.repo.SumCompletedRevenue(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := uc.repo.CountClients(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := uc.repo.ListRecentProjects(ctx, recentProjectsLimit)
	if err != nil {
		return nil, err
	}

	recent := make([]dto.RecentProjectDTO, 0, len(projects))
	for _, p := range projects {
		recent = append(recent, dto.RecentProjectDTO{
			ID:         p.ID,
			Title:      p.Title,
			Status:     p.Status,
			DueDate:    p.DueDate,
			ClientName: p.Client.Name,
		})
	}

	return &Summary{
		TotalProjects:     total,
		ActiveProjects:    active,
		CompletedProjects: completed,
		TotalRevenue:      revenue,
		TotalClients:      clients,
		RecentProjects:    recent,
	}, nil
}
