package postgres

import (
	"context"
	"time"

	"shipway/internal/domain/entity"
	domainerrors "shipway/internal/domain/errors"
	"shipway/internal/domain/repository"
	"shipway/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// UpsertResource creates or refreshes one catalog shadow row.
func (repo *catalogRepository) UpsertResource(ctx context.Context, res *entity.CatalogResource) error {
	resM := &model.CatalogResourceModel{
		Shop:       res.Shop,
		Kind:       string(res.Kind),
		ResourceID: res.ID,
		Title:      res.Title,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "shop"}, {Name: "kind"}, {Name: "resource_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"title":      resM.Title,
				"updated_at": time.Now(),
			}),
		}).
		Create(resM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert catalog resource")
	}

	return nil
}
