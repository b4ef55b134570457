package project

import (
	"time"

	"github.com/dataproanalytics/workflow-crm/internal/models"
	"github.com/dataproanalytics/workflow-crm/internal/templates"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus mutates the project for the new status. Completion also
// stamps CompletedAt; notes overwrite only when supplied.
func ApplyStatus(p *models.Project, s Status, notes string, now time.Time) {
	p.Status = string(s)
	if notes != "" {
		p.Notes = notes
	}
	if s == StatusCompleted {
		p.CompletedAt = &now
	}
}

// MessageKindFor returns the template triggered by a status change,
// if any. pending and cancelled send nothing.
func MessageKindFor(s Status) (string, bool) {
	switch s {
	case StatusActive:
		return templates.NameProjectKickoff, true
	case StatusInProgress:
		return templates.NameProgressUpdate, true
	case StatusCompleted:
		return templates.NameDeliveryNotification, true
	}
	return "", false
}
