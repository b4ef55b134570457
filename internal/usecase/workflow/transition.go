package workflow

import (
	"context"
	"log"
	"time"

	"github.com/dataproanalytics/workflow-crm/internal/audit"
	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/models"
)

const followUpAfterDays = 7

// TransitionProject persists a project status change and fires the
// status's automatic message. The status write commits first; a
// render failure surfaces to the caller but never rolls the status
// back. Transitions are applied permissively: out-of-order moves are
// logged, not rejected.
type TransitionProject struct {
	repo     domain.Repository
	messages *SendProjectMessage
	audit    *audit.Dispatcher
}

func NewTransitionProject(
	repo domain.Repository,
	messages *SendProjectMessage,
	audit *audit.Dispatcher,
) *TransitionProject {
	return &TransitionProject{
		repo:     repo,
		messages: messages,
		audit:    audit,
	}
}

func (uc *TransitionProject) Execute(
	ctx context.Context,
	projectID uint,
	newStatus domain.Status,
	notes string,
	customVars map[string]string,
) (*models.Project, *models.Communication, error) {

	if !domain.IsValid(newStatus) {
		return nil, nil, httperr.ErrBusiness("validation_error")
	}

	now := time.Now()
	var p *models.Project
	var previous domain.Status

	// Row lock so two concurrent transitions on the same project
	// cannot both commit.
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		locked, err := tx.GetProjectForUpdate(ctx, projectID)
		if err != nil {
			return err
		}

		previous = domain.Status(locked.Status)
		domain.ApplyStatus(locked, newStatus, notes, now)

		if err := tx.UpdateProject(ctx, locked); err != nil {
			return err
		}

		if newStatus == domain.StatusCompleted && locked.Price != nil {
			if err := tx.AddClientRevenue(ctx, locked.ClientID, *locked.Price); err != nil {
				return err
			}
		}

		p = locked
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// Reload with the client joined so callers get the full projection.
	if full, ferr := uc.repo.GetProject(ctx, projectID); ferr == nil {
		p = full
	}

	if !domain.IsOrderly(previous, newStatus) {
		log.Printf("project %d: out-of-order transition %s -> %s applied",
			p.ID, previous, newStatus)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "status_changed",
		Entity:   "project",
		EntityID: &p.ID,
		Metadata: map[string]any{"from": previous, "to": newStatus},
	})

	// Everything below happens after the status commit and is not
	// coupled to it transactionally.
	if newStatus == domain.StatusCompleted {
		f := &models.FollowUp{
			ProjectID: p.ID,
			DueAt:     now.AddDate(0, 0, followUpAfterDays),
		}
		if err := uc.repo.CreateFollowUp(ctx, f); err != nil {
			return p, nil, err
		}
	}

	kind, ok := domain.MessageKindFor(newStatus)
	if !ok {
		return p, nil, nil
	}

	vars := statusDefaults(newStatus)
	for k, v := range customVars {
		vars[k] = v
	}

	comm, err := uc.messages.Execute(ctx, p.ID, kind, vars, false)
	if err != nil {
		return p, nil, err
	}

	return p, comm, nil
}

// statusDefaults supplies placeholder progress/delivery fields when
// the caller sends none.
func statusDefaults(s domain.Status) map[string]string {
	switch s {
	case domain.StatusInProgress:
		return map[string]string{
			"progress_percentage": "50",
			"current_task":        "Data analysis and insights generation",
			"completed_tasks":     "- Initial research completed\n- Data collection finalized",
			"next_steps":          "- Complete analysis\n- Generate recommendations\n- Prepare final report",
		}
	case domain.StatusCompleted:
		return map[string]string{
			"deliverables_list": "- Comprehensive analysis report\n- Executive summary\n- Data visualizations\n- Strategic recommendations",
			"key_findings":      "Key insights and actionable recommendations included in the full report.",
		}
	}
	return map[string]string{}
}
