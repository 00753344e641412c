package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSignupModel is the GORM-specific struct for the 'notification_signups' table.
// It records a shopper's request to be emailed when a resource becomes deliverable.
type NotificationSignupModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email      string    `gorm:"not null"`
	Kind       string    `gorm:"not null;index:idx_signups_resource"`
	ResourceID string    `gorm:"not null;index:idx_signups_resource"`
	Country    string    `gorm:"not null"`
	NotifiedAt *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationSignupModel) TableName() string {
	return "notification_signups"
}
