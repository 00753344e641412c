package usecase

import (
	"context"

	"shipway/internal/domain/entity"
	"shipway/internal/domain/service"
)

// SignupInput carries one shopper notification signup.
type SignupInput struct {
	Email        string
	ProductID    string // Raw product id, optional.
	CollectionID string // Raw collection id, optional.
	Country      string
}

// SignupResult reports the outcome of a signup. Success is false when the
// signup was stored but the confirmation email could not be delivered.
type SignupResult struct {
	Success bool
	Message string
}

// NotificationUsecase covers shopper signups and their eventual delivery.
type NotificationUsecase interface {
	// Signup records a notification request after verifying that the
	// targeted resource has notifications enabled in the given country.
	Signup(ctx context.Context, input *SignupInput) (*SignupResult, error)

	// DispatchIncluded emails every pending signup for the event's
	// resources, stamping NotifiedAt on success.
	DispatchIncluded(ctx context.Context, event *service.ResourceIncludedEvent) error

	// PendingSignups lists un-notified signups for a resource and country.
	PendingSignups(ctx context.Context, ref entity.ResourceRef, country string) ([]*entity.NotificationSignup, error)
}
