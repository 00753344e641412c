package repository

import (
	"context"
	"time"

	"shipway/internal/domain/entity"
	"shipway/internal/errors"

	"github.com/google/uuid"
)

// ErrSignupNotFound is returned when a notification signup is not found.
var ErrSignupNotFound = errors.New("notification signup not found")

// SignupRepository defines the interface for notification signup persistence.
type SignupRepository interface {
	// CreateSignup persists a new signup with a nil NotifiedAt.
	CreateSignup(ctx context.Context, signup *entity.NotificationSignup) error

	// FindPendingSignups returns un-notified signups for the given resource
	// and country (case-insensitive).
	FindPendingSignups(ctx context.Context, ref entity.ResourceRef, country string) ([]*entity.NotificationSignup, error)

	// MarkNotified stamps NotifiedAt on a signup after a successful send.
	MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error
}
