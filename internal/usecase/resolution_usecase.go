// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"shipway/internal/domain/entity"
)

// DeliveryQuery carries one storefront availability question. Resource ids
// may arrive with the host platform's GID prefix; the engine normalizes them.
type DeliveryQuery struct {
	ProductID    string // Raw product id, optional.
	CollectionID string // Raw collection id, optional.
	Country      string // Optional override; skips IP detection when set.
	ZipCode      string // Optional shopper zip code.
	IP           string // Client IP used for country detection.
}

// CountryQuery carries one country-availability question.
type CountryQuery struct {
	ProductID    string
	CollectionID string
	Country      string
}

// ResolutionUsecase answers storefront availability queries.
type ResolutionUsecase interface {
	// ResolveDelivery resolves a delivery query to exactly one verdict.
	// Validation failures return an error; internal failures are masked into
	// a fallback-available verdict with Degraded set.
	ResolveDelivery(ctx context.Context, query *DeliveryQuery) (*entity.Verdict, error)

	// ResolveCountry answers whether a resource is deliverable in a named
	// country, without IP detection or zip scoping. The country must be one
	// of the known country names.
	ResolveCountry(ctx context.Context, query *CountryQuery) (*entity.Verdict, error)
}
