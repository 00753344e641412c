package repository

import (
	"context"

	"shipway/internal/domain/entity"
)

// CatalogRepository maintains the local shadow of host-platform catalog
// entities. Shadows are upserted lazily when a rule references them and are
// never synced back.
type CatalogRepository interface {
	// UpsertResource creates or refreshes one catalog shadow row.
	UpsertResource(ctx context.Context, res *entity.CatalogResource) error
}
