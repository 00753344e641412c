package service

import (
	"context"

	"shipway/internal/domain/entity"
)

// ResourceIncludedEvent is published after an authoring commit flips
// associations from excluded back to included with notifications enabled.
// The notifier worker consumes it and emails pending signups.
type ResourceIncludedEvent struct {
	RequestID string               `json:"request_id,omitempty"` // For distributed tracing
	Shop      string               `json:"shop"`
	Country   string               `json:"country"`
	Resources []entity.ResourceRef `json:"resources"`
	// Delivery metadata shown in the notification email.
	DeliveryTime string `json:"delivery_time,omitempty"`
}

// IncludedDispatcher delivers reincluded-resource events to pending signups.
// It is the consuming side of ResourceIncludedEvent; when no message broker
// is configured the publisher invokes it in-process instead.
type IncludedDispatcher interface {
	DispatchIncluded(ctx context.Context, event *ResourceIncludedEvent) error
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishResourceIncluded publishes a reincluded-resource event for async processing
	PublishResourceIncluded(ctx context.Context, event *ResourceIncludedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
