package models

import "time"

// MessageTemplate mirrors the built-in catalog in the database so
// usage counts survive restarts. Variables holds a JSON array of the
// variable names the template expects.
type MessageTemplate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Category string `gorm:"size:50" json:"category"`

	Subject string `gorm:"size:200" json:"subject"`
	Body    string `gorm:"type:text" json:"body"`

	Variables  string `gorm:"type:text" json:"variables"`
	UsageCount int    `gorm:"default:0" json:"usage_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
