package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dataproanalytics/workflow-crm/internal/audit"
	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/models"
	"github.com/dataproanalytics/workflow-crm/internal/templates"
)

const dueDateLayout = "2006-01-02"

// SendProjectMessage renders a catalog template against a project's
// current state and records the result as a Communication. Actual
// delivery is someone else's job; the row means "composed", not
// "delivered".
type SendProjectMessage struct {
	repo     domain.Repository
	renderer *templates.Renderer
	audit    *audit.Dispatcher
	seller   string
}

func NewSendProjectMessage(
	repo domain.Repository,
	renderer *templates.Renderer,
	audit *audit.Dispatcher,
	sellerName string,
) *SendProjectMessage {
	return &SendProjectMessage{
		repo:     repo,
		renderer: renderer,
		audit:    audit,
		seller:   sellerName,
	}
}

func (uc *SendProjectMessage) Execute(
	ctx context.Context,
	projectID uint,
	templateName string,
	customVars map[string]string,
	responseRequired bool,
) (*models.Communication, error) {

	p, err := uc.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	vars := uc.projectVars(p)
	for k, v := range customVars {
		vars[k] = v
	}

	msg, err := uc.renderer.Render(templateName, vars)
	if err != nil {
		return nil, err
	}

	comm := &models.Communication{
		ProjectID:        &p.ID,
		ClientID:         p.ClientID,
		Kind:             templateName,
		Subject:          msg.Subject,
		Body:             msg.Body,
		SentAt:           time.Now(),
		ResponseRequired: responseRequired,
		Reference:        uuid.NewString(),
	}

	if err := uc.repo.CreateCommunication(ctx, comm); err != nil {
		return nil, err
	}

	if err := uc.repo.IncrementTemplateUsage(ctx, templateName); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "communication_recorded",
		Entity:   "communication",
		EntityID: &comm.ID,
		Metadata: map[string]any{"kind": templateName, "project_id": p.ID},
	})

	return comm, nil
}

// projectVars derives the default variable map from the project and
// its client. Caller-supplied custom vars take precedence over these.
func (uc *SendProjectMessage) projectVars(p *models.Project) map[string]string {
	vars := map[string]string{
		"client_name":   p.Client.Name,
		"client_email":  p.Client.Email,
		"project_type":  p.Type,
		"project_title": p.Title,
		"package_type":  p.Package,
		"service_type":  p.Type,
		"seller_name":   uc.seller,
	}
	if p.DueDate != nil {
		vars["due_date"] = p.DueDate.Format(dueDateLayout)
	} else {
		vars["due_date"] = ""
	}
	return vars
}
