package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/dataproanalytics/workflow-crm/internal/audit"
	domain "github.com/dataproanalytics/workflow-crm/internal/domain/project"
	"github.com/dataproanalytics/workflow-crm/internal/httperr"
	"github.com/dataproanalytics/workflow-crm/internal/models"
	"github.com/dataproanalytics/workflow-crm/internal/validators"
)

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	name string,
	email string,
	handle string,
) (*models.Client, error) {

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" {
		return nil, httperr.ErrBusiness("validation_error")
	}
	if !validators.IsEmailValid(email) {
		return nil, httperr.ErrBusiness("validation_error")
	}

	client := &models.Client{
		Name:         name,
		Email:        email,
		Handle:       strings.TrimSpace(handle),
		FirstContact: time.Now(),
	}

	if err := uc.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return client, nil
}
