package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/dataproanalytics/workflow-crm/internal/db"
	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/models"
	"github.com/dataproanalytics/workflow-crm/internal/templates"
)

func newTestRepo(t *testing.T) *WorkflowGormRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "repo_test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(gdb))
	require.NoError(t, dbpkg.SeedTemplates(gdb, templates.BuiltinCatalog()))

	return NewWorkflowGormRepository(gdb)
}

func seedClient(t *testing.T, r *WorkflowGormRepository) *models.Client {
	t.Helper()
	client := &models.Client{
		Name:         "Jane Roe",
		Email:        "jane@example.com",
		FirstContact: time.Now(),
	}
	require.NoError(t, r.CreateClient(context.Background(), client))
	return client
}

func TestGetClientNotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetClient(context.Background(), 12345)
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
}

func TestGetProjectNotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetProject(context.Background(), 12345)
	assert.True(t, httperr.IsBusiness(err, "project_not_found"))

	_, err = r.GetProjectForUpdate(context.Background(), 12345)
	assert.True(t, httperr.IsBusiness(err, "project_not_found"))
}

func TestSearchClients(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seedClient(t, r)
	other := &models.Client{Name: "Acme Corp", Email: "ops@acme.io"}
	require.NoError(t, r.CreateClient(ctx, other))

	all, err := r.SearchClients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	hits, err := r.SearchClients(ctx, "ACME")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Acme Corp", hits[0].Name)

	none, err := r.SearchClients(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListRecentProjectsLimit(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	client := seedClient(t, r)

	for i := 0; i < 5; i++ {
		p := &models.Project{
			ClientID:  client.ID,
			Type:      "Data Analysis",
			Title:     "p",
			Status:    string(domain.StatusActive),
			StartDate: time.Now().Add(time.Duration(-i) * time.Hour),
		}
		require.NoError(t, r.CreateProject(ctx, p))
	}

	projects, err := r.ListRecentProjects(ctx, 3)
	require.NoError(t, err)
	require.Len(t, projects, 3)

	for i := 1; i < len(projects); i++ {
		assert.False(t, projects[i].StartDate.After(projects[i-1].StartDate),
			"projects must be ordered by start date descending")
	}
}

func TestSumCompletedRevenue(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	client := seedClient(t, r)

	price := 599.0
	completed := &models.Project{
		ClientID: client.ID, Type: "t", Title: "done",
		Status: string(domain.StatusCompleted), Price: &price,
		StartDate: time.Now(),
	}
	require.NoError(t, r.CreateProject(ctx, completed))

	// Completed but unpriced: contributes zero, must not poison the sum.
	free := &models.Project{
		ClientID: client.ID, Type: "t", Title: "free",
		Status:    string(domain.StatusCompleted),
		StartDate: time.Now(),
	}
	require.NoError(t, r.CreateProject(ctx, free))

	activePrice := 199.0
	active := &models.Project{
		ClientID: client.ID, Type: "t", Title: "open",
		Status: string(domain.StatusActive), Price: &activePrice,
		StartDate: time.Now(),
	}
	require.NoError(t, r.CreateProject(ctx, active))

	sum, err := r.SumCompletedRevenue(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 599.0, sum, 0.001)
}

func TestSumCompletedRevenueEmpty(t *testing.T) {
	r := newTestRepo(t)

	sum, err := r.SumCompletedRevenue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestFollowUpLifecycle(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	client := seedClient(t, r)

	p := &models.Project{
		ClientID: client.ID, Type: "t", Title: "p",
		Status: string(domain.StatusCompleted), StartDate: time.Now(),
	}
	require.NoError(t, r.CreateProject(ctx, p))

	past := &models.FollowUp{ProjectID: p.ID, DueAt: time.Now().Add(-time.Hour)}
	future := &models.FollowUp{ProjectID: p.ID, DueAt: time.Now().Add(24 * time.Hour)}
	require.NoError(t, r.CreateFollowUp(ctx, past))
	require.NoError(t, r.CreateFollowUp(ctx, future))

	due, err := r.ListDueFollowUps(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, past.ID, due[0].ID)

	sentAt := time.Now()
	require.NoError(t, r.MarkFollowUpSent(ctx, past.ID, sentAt))

	due, err = r.ListDueFollowUps(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, due)

	// Marking again is a no-op; the first sent timestamp stays.
	require.NoError(t, r.MarkFollowUpSent(ctx, past.ID, sentAt.Add(time.Hour)))

	var marker models.FollowUp
	require.NoError(t, r.db.First(&marker, past.ID).Error)
	assert.True(t, marker.Sent)
	require.NotNil(t, marker.SentAt)
	assert.WithinDuration(t, sentAt, *marker.SentAt, time.Second)
}

func TestIncrementTemplateUsage(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.IncrementTemplateUsage(ctx, templates.NameFollowUp))
	require.NoError(t, r.IncrementTemplateUsage(ctx, templates.NameFollowUp))

	tpls, err := r.ListTemplates(ctx)
	require.NoError(t, err)

	found := false
	for _, tpl := range tpls {
		if tpl.Name == templates.NameFollowUp {
			assert.Equal(t, 2, tpl.UsageCount)
			found = true
		} else {
			assert.Zero(t, tpl.UsageCount)
		}
	}
	assert.True(t, found)
}

func TestClientCounters(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	client := seedClient(t, r)

	require.NoError(t, r.IncrementClientProjects(ctx, client.ID))
	require.NoError(t, r.AddClientRevenue(ctx, client.ID, 350.25))
	require.NoError(t, r.AddClientRevenue(ctx, client.ID, 100.0))

	fresh, err := r.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.TotalProjects)
	assert.InDelta(t, 450.25, fresh.TotalRevenue, 0.001)
}
