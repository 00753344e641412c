package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSignup records a shopper's request to be notified when a
// resource becomes deliverable in their country. NotifiedAt stays nil until
// an email is successfully delivered.
type NotificationSignup struct {
	ID         uuid.UUID    `json:"id"`
	Email      string       `json:"email"`
	Kind       ResourceKind `json:"kind"`
	ResourceID string       `json:"resource_id"`
	Country    string       `json:"country"`
	NotifiedAt *time.Time   `json:"notified_at"`
	CreatedAt  time.Time    `json:"created_at"`
}
