package models

import "time"

// Client is a business relationship. Never hard-deleted; running totals
// are maintained by the workflow usecases, not set directly.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:120;not null" json:"email"`
	Handle string `gorm:"size:50" json:"handle"`

	FirstContact time.Time `json:"first_contact"`

	TotalProjects int     `gorm:"default:0" json:"total_projects"`
	TotalRevenue  float64 `gorm:"default:0" json:"total_revenue"`

	Satisfaction *int   `json:"satisfaction"`
	Notes        string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
