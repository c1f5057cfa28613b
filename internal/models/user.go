package models

import "time"

// User represents an account row in the Users sheet.
type User struct {
	ID        string    `json:"id"`        // Opaque unique id, generated at creation
	Username  string    `json:"username"`  // Unique username
	Password  string    `json:"-"`         // Bcrypt hash, never serialized
	Role      Role      `json:"role"`      // user or admin
	CreatedAt time.Time `json:"createdAt"` // Creation timestamp, immutable
}
