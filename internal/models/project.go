package models

import "time"

type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	Type        string `gorm:"size:50;not null" json:"type"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	StartDate   time.Time  `json:"start_date"`
	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`

	Package string   `gorm:"size:20" json:"package"`
	Price   *float64 `json:"price"`

	Requirements string `gorm:"type:text" json:"requirements"`
	Deliverables string `gorm:"type:text" json:"deliverables"`
	Notes        string `gorm:"size:255" json:"notes"`

	Progress int `gorm:"default:0" json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
