package models

import "time"

// Todo represents a todo row in the Todos sheet.
type Todo struct {
	ID          string    `json:"id"`          // Opaque unique id
	Title       string    `json:"title"`       // Required, non-empty
	Description string    `json:"description"` // Optional
	ImageID     string    `json:"imageId"`     // Drive file id, empty when no image
	ImageLink   string    `json:"imageLink"`   // Public link to the stored image
	CreatedAt   time.Time `json:"createdAt"`   // Set once
	UpdatedAt   time.Time `json:"updatedAt"`   // Refreshed on every mutation
	Completed   bool      `json:"completed"`
	UserID      string    `json:"userId"` // Owner, never changes
}
