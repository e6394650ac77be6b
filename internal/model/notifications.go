package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one entry in a user's inbox. Department is caller
// metadata: status alerts carry the report's department, performance
// alerts the flagged department. The fan-out service does not interpret it.
type Notification struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Department string    `json:"department,omitempty"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
