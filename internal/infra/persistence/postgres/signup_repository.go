package postgres

import (
	"context"
	"time"

	"shipway/internal/domain/entity"
	domainerrors "shipway/internal/domain/errors"
	"shipway/internal/domain/repository"
	"shipway/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// signupRepository implements the repository.SignupRepository interface.
type signupRepository struct {
	db *gorm.DB
}

// NewSignupRepository is the constructor for signupRepository.
func NewSignupRepository(db *gorm.DB) repository.SignupRepository {
	return &signupRepository{
		db: db,
	}
}

// CreateSignup persists a new signup with a nil NotifiedAt.
func (repo *signupRepository) CreateSignup(ctx context.Context, signup *entity.NotificationSignup) error {
	signupM := fromSignupDomain(signup)

	if err := repo.db.WithContext(ctx).Create(signupM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required signup information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create signup")
	}

	signup.ID = signupM.ID
	signup.CreatedAt = signupM.CreatedAt

	return nil
}

// FindPendingSignups returns un-notified signups for the given resource and country.
func (repo *signupRepository) FindPendingSignups(ctx context.Context, ref entity.ResourceRef, country string) ([]*entity.NotificationSignup, error) {
	var signupModels []*model.NotificationSignupModel

	if err := repo.db.WithContext(ctx).
		Where("kind = ? AND resource_id = ?", string(ref.Kind), ref.ID).
		Where("LOWER(country) = LOWER(?)", country).
		Where("notified_at IS NULL").
		Order("created_at ASC").
		Find(&signupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending signups")
	}

	signups := make([]*entity.NotificationSignup, 0, len(signupModels))
	for _, signupM := range signupModels {
		signups = append(signups, toSignupDomain(signupM))
	}

	return signups, nil
}

// MarkNotified stamps NotifiedAt on a signup after a successful send.
func (repo *signupRepository) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationSignupModel{}).
		Where("id = ?", id).
		Update("notified_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark signup notified")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSignupNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSignupDomain converts a GORM NotificationSignupModel to a domain NotificationSignup.
func toSignupDomain(data *model.NotificationSignupModel) *entity.NotificationSignup {
	if data == nil {
		return nil
	}

	return &entity.NotificationSignup{
		ID:         data.ID,
		Email:      data.Email,
		Kind:       entity.ResourceKind(data.Kind),
		ResourceID: data.ResourceID,
		Country:    data.Country,
		NotifiedAt: data.NotifiedAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromSignupDomain converts a domain NotificationSignup to a GORM NotificationSignupModel.
func fromSignupDomain(data *entity.NotificationSignup) *model.NotificationSignupModel {
	if data == nil {
		return nil
	}

	return &model.NotificationSignupModel{
		ID:         data.ID,
		Email:      data.Email,
		Kind:       string(data.Kind),
		ResourceID: data.ResourceID,
		Country:    data.Country,
		NotifiedAt: data.NotifiedAt,
		CreatedAt:  data.CreatedAt,
	}
}
