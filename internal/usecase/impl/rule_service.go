package impl

import (
	"context"
	"log/slog"
	"time"

	"shipway/internal/domain/entity"
	domainerrors "shipway/internal/domain/errors"
	"shipway/internal/domain/repository"
	"shipway/internal/domain/service"
	"shipway/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ruleService struct {
	txManager repository.TransactionManager
	ruleRepo  repository.RuleRepository
	catalog   service.CatalogService
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// RuleServiceParams holds dependencies for RuleService, injected by Fx.
type RuleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RuleRepo  repository.RuleRepository
	Catalog   service.CatalogService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRuleService creates a new rule authoring service instance
func NewRuleService(params RuleServiceParams) usecase.RuleUsecase {
	return &ruleService{
		txManager: params.TxManager,
		ruleRepo:  params.RuleRepo,
		catalog:   params.Catalog,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// SaveRule validates the input, then creates or updates a rule inside a
// single transaction. Conflict detection and the overlap check run inside the
// same transaction so concurrent saves cannot race past each other.
func (s *ruleService) SaveRule(ctx context.Context, input *usecase.SaveRuleInput) (*usecase.SaveRuleResult, error) {
	startDate, endDate, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	resources := normalizeResources(input.Resources)
	refs := make([]entity.ResourceRef, 0, len(resources))
	for _, res := range resources {
		refs = append(refs, entity.ResourceRef{Kind: res.Kind, ID: res.ID})
	}

	zipCodeType := input.ZipCodeType
	if zipCodeType == "" {
		zipCodeType = entity.ZipInclusive
	}

	rule := &entity.Rule{
		Shop:            input.Shop,
		Country:         input.Country,
		DeliveryTime:    input.DeliveryTime,
		Message:         input.Message,
		EventName:       input.EventName,
		StartDate:       startDate,
		EndDate:         endDate,
		ShippingMethod:  input.ShippingMethod,
		PickupAvailable: input.PickupAvailable,
		LocalDelivery:   input.LocalDelivery,
		ZipCodes:        input.ZipCodes,
		ZipCodeType:     zipCodeType,
	}

	var updated bool
	previouslyExcluded := map[entity.ResourceRef]bool{}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		ruleRepo := factory.NewRuleRepository()
		catalogRepo := factory.NewCatalogRepository()

		existing, err := ruleRepo.FindOverlappingRule(ctx, input.Shop, input.Country, refs)
		if err != nil && !errors.Is(err, repository.ErrRuleNotFound) {
			return errors.Wrap(err, "failed to find overlapping rule")
		}

		if existing != nil {
			// An overlapping rule is updated in place. Remember which of its
			// associations were excluded so reinclusions can be detected
			// after commit.
			for i := range existing.Associations {
				if existing.Associations[i].Excluded {
					previouslyExcluded[existing.Associations[i].Ref()] = true
				}
			}

			rule.ID = existing.ID
			rule.CreatedAt = existing.CreatedAt
			updated = true

			if err := ruleRepo.UpdateRule(ctx, rule); err != nil {
				return errors.Wrap(err, "failed to update rule")
			}
		} else {
			conflicts, err := ruleRepo.FindConflictingRules(ctx, input.Shop, input.Country, input.ZipCodes, zipCodeType, refs)
			if err != nil {
				return errors.Wrap(err, "failed to find conflicting rules")
			}
			if len(conflicts) > 0 {
				return domainerrors.ErrRuleConflict
			}

			if err := ruleRepo.CreateRule(ctx, rule); err != nil {
				return errors.Wrap(err, "failed to create rule")
			}
		}

		for _, res := range resources {
			if err := catalogRepo.UpsertResource(ctx, &entity.CatalogResource{
				Shop:  input.Shop,
				Kind:  res.Kind,
				ID:    res.ID,
				Title: res.Title,
			}); err != nil {
				return errors.Wrap(err, "failed to upsert catalog resource")
			}

			if err := ruleRepo.UpsertAssociation(ctx, &entity.ResourceAssociation{
				RuleID:               rule.ID,
				Kind:                 res.Kind,
				ResourceID:           res.ID,
				Excluded:             res.Excluded,
				NotificationsEnabled: res.NotificationsEnabled,
			}); err != nil {
				return errors.Wrap(err, "failed to upsert rule resource")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	rule.Associations = make([]entity.ResourceAssociation, 0, len(resources))
	for _, res := range resources {
		rule.Associations = append(rule.Associations, entity.ResourceAssociation{
			RuleID:               rule.ID,
			Kind:                 res.Kind,
			ResourceID:           res.ID,
			Excluded:             res.Excluded,
			NotificationsEnabled: res.NotificationsEnabled,
		})
	}

	s.publishReinclusions(ctx, input, resources, previouslyExcluded)

	return &usecase.SaveRuleResult{Rule: rule, Updated: updated}, nil
}

// publishReinclusions emits an event for resources that flipped from excluded
// to included with notifications enabled. Publish failures are logged, not
// returned: the rule save already committed.
func (s *ruleService) publishReinclusions(ctx context.Context, input *usecase.SaveRuleInput, resources []usecase.RuleResourceInput, previouslyExcluded map[entity.ResourceRef]bool) {
	if len(previouslyExcluded) == 0 {
		return
	}

	var reincluded []entity.ResourceRef
	for _, res := range resources {
		ref := entity.ResourceRef{Kind: res.Kind, ID: res.ID}
		if !res.Excluded && res.NotificationsEnabled && previouslyExcluded[ref] {
			reincluded = append(reincluded, ref)
		}
	}

	if len(reincluded) == 0 {
		return
	}

	event := &service.ResourceIncludedEvent{
		Shop:         input.Shop,
		Country:      input.Country,
		Resources:    reincluded,
		DeliveryTime: input.DeliveryTime,
	}

	if err := s.publisher.PublishResourceIncluded(ctx, event); err != nil {
		s.logger.Error("failed to publish reinclusion event",
			slog.String("shop", input.Shop),
			slog.String("country", input.Country),
			slog.Int("resource_count", len(reincluded)),
			slog.Any("error", err),
		)
	}
}

func (s *ruleService) validateInput(input *usecase.SaveRuleInput) (startDate, endDate *time.Time, err error) {
	if input.Country == "" {
		return nil, nil, domainerrors.ErrCountryRequired
	}

	if len(input.Resources) == 0 {
		return nil, nil, domainerrors.ErrResourceRequired
	}

	for _, res := range input.Resources {
		if !res.Kind.Valid() || res.ID == "" {
			return nil, nil, domainerrors.ErrResourceRequired
		}
	}

	startDate, err = parseDate(input.StartDate)
	if err != nil {
		return nil, nil, domainerrors.ErrInvalidDate
	}

	endDate, err = parseDate(input.EndDate)
	if err != nil {
		return nil, nil, domainerrors.ErrInvalidDate
	}

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, nil, domainerrors.ErrDateOrder
	}

	if endDate != nil {
		today := s.now().UTC().Truncate(24 * time.Hour)
		if endDate.Before(today) {
			return nil, nil, domainerrors.ErrEndDatePast
		}
	}

	if input.DeliveryTime != "" && len(input.DeliveryTime) < 3 {
		return nil, nil, domainerrors.ErrDeliveryTimeTooShort
	}

	if invalid := InvalidZipPatterns(input.ZipCodes); len(invalid) > 0 {
		return nil, nil, domainerrors.NewInvalidZipSpecError(invalid)
	}

	return startDate, endDate, nil
}

// ListRules returns the shop's rules, newest first, with associations.
func (s *ruleService) ListRules(ctx context.Context, shop string) ([]*entity.Rule, error) {
	rules, err := s.ruleRepo.ListRules(ctx, shop)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rules")
	}

	return rules, nil
}

// GetCatalog fetches the shop's full catalog from the host platform.
func (s *ruleService) GetCatalog(ctx context.Context, shop string) (*entity.CatalogSnapshot, error) {
	return s.catalog.FetchCatalog(ctx, shop)
}

// SearchCatalog searches vendors or tags by name fragment.
func (s *ruleService) SearchCatalog(ctx context.Context, shop string, kind entity.ResourceKind, query string) ([]string, error) {
	return s.catalog.SearchResources(ctx, shop, kind, query)
}

// --- Helpers ---

func normalizeResources(inputs []usecase.RuleResourceInput) []usecase.RuleResourceInput {
	resources := make([]usecase.RuleResourceInput, 0, len(inputs))
	for _, res := range inputs {
		res.ID = entity.NormalizeResourceID(res.Kind, res.ID)
		resources = append(resources, res)
	}

	return resources
}

// parseDate parses a "2006-01-02" form value; empty means unbounded.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(time.DateOnly, value, time.UTC)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
