package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dataproanalytics/workflow-crm/internal/audit"
	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/templates"
	workflow "github.com/dataproanalytics/workflow-crm/internal/usecase/workflow"
)

// Scheduler polls due follow-up markers and records the follow_up
// message for each. The marker itself is inert data; this poller is
// the collaborator that acts on it.
type Scheduler struct {
	cron     *cron.Cron
	repo     domain.Repository
	messages *workflow.SendProjectMessage
	audit    *audit.Dispatcher
	every    time.Duration
}

func New(
	repo domain.Repository,
	messages *workflow.SendProjectMessage,
	audit *audit.Dispatcher,
	every time.Duration,
) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		repo:     repo,
		messages: messages,
		audit:    audit,
		every:    every,
	}
}

func (s *Scheduler) Start() {
	spec := fmt.Sprintf("@every %s", s.every)
	_, err := s.cron.AddFunc(spec, func() {
		if err := s.RunDueFollowUps(context.Background()); err != nil {
			log.Printf("follow-up poll failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("failed to register follow-up job: %v", err)
		return
	}

	log.Printf("follow-up scheduler started (polling every %s)", s.every)
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunDueFollowUps processes every due, unsent marker once. A send
// failure for one project does not stop the rest of the batch.
func (s *Scheduler) RunDueFollowUps(ctx context.Context) error {
	due, err := s.repo.ListDueFollowUps(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, f := range due {
		if _, err := s.messages.Execute(
			ctx, f.ProjectID, templates.NameFollowUp, nil, true,
		); err != nil {
			log.Printf("follow-up for project %d failed: %v", f.ProjectID, err)
			continue
		}

		if err := s.repo.MarkFollowUpSent(ctx, f.ID, time.Now()); err != nil {
			log.Printf("failed to mark follow-up %d sent: %v", f.ID, err)
			continue
		}

		s.audit.Dispatch(audit.Event{
			Action:   "follow_up_sent",
			Entity:   "follow_up",
			EntityID: &f.ID,
			Metadata: map[string]any{"project_id": f.ProjectID},
		})
	}

	return nil
}
