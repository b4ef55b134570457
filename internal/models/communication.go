package models

import "time"

// Communication is an append-only record of a composed message.
// It is never updated or deleted after creation; plain foreign keys
// only, no embedded relations.
type Communication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProjectID *uint `json:"project_id"`
	ClientID  uint  `gorm:"not null" json:"client_id"`

	Kind    string `gorm:"size:50" json:"kind"`
	Subject string `gorm:"size:200" json:"subject"`
	Body    string `gorm:"type:text" json:"body"`

	SentAt           time.Time `json:"sent_at"`
	ResponseRequired bool      `gorm:"default:false" json:"response_required"`

	// Reference is handed to the delivery collaborator so an outbound
	// send can be traced back to this row.
	Reference string `gorm:"size:36" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
}
