package models

import "time"

// FollowUp is an inert marker: "re-engage this project on DueAt".
// The scheduler polls due, unsent rows and records the follow_up
// message; it is not a running timer.
type FollowUp struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProjectID uint `gorm:"not null" json:"project_id"`

	DueAt  time.Time  `json:"due_at"`
	Sent   bool       `gorm:"default:false" json:"sent"`
	SentAt *time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
}
