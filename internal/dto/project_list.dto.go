package dto

import "time"

type RecentProjectDTO struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	DueDate    *time.Time `json:"due_date"`
	ClientName string     `json:"client_name"`
}
