package service

import (
	"context"

	"shipway/internal/domain/entity"
)

// CatalogService reads the host platform's product catalog. The catalog is
// consumed as an opaque read-only lookup; nothing is written back.
type CatalogService interface {
	// FetchCatalog pages through all products and collections of the shop,
	// collecting vendors and tags along the way.
	FetchCatalog(ctx context.Context, shop string) (*entity.CatalogSnapshot, error)

	// SearchResources searches vendors or tags by name fragment.
	// kind must be ResourceVendor or ResourceTag.
	SearchResources(ctx context.Context, shop string, kind entity.ResourceKind, query string) ([]string, error)
}
