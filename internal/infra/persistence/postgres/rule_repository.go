package postgres

import (
	"context"
	"time"

	"shipway/internal/domain/entity"
	domainerrors "shipway/internal/domain/errors"
	"shipway/internal/domain/repository"
	"shipway/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ruleRepository implements the repository.RuleRepository interface.
type ruleRepository struct {
	db *gorm.DB
}

// NewRuleRepository is the constructor for ruleRepository.
func NewRuleRepository(db *gorm.DB) repository.RuleRepository {
	return &ruleRepository{
		db: db,
	}
}

// refPairs converts resource references into tuples for (kind, resource_id) IN queries.
func refPairs(refs []entity.ResourceRef) [][]any {
	pairs := make([][]any, 0, len(refs))
	for _, ref := range refs {
		pairs = append(pairs, []any{string(ref.Kind), ref.ID})
	}

	return pairs
}

// FindExcludedRule returns a rule for country carrying an excluded association for ref.
func (repo *ruleRepository) FindExcludedRule(ctx context.Context, ref entity.ResourceRef, country string) (*entity.Rule, error) {
	var ruleM model.DeliveryRuleModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN rule_resources rr ON rr.rule_id = delivery_rules.id").
		Where("rr.kind = ? AND rr.resource_id = ? AND rr.excluded = ?", string(ref.Kind), ref.ID, true).
		Where("LOWER(delivery_rules.country) = LOWER(?)", country).
		Preload("Resources", "kind = ? AND resource_id = ?", string(ref.Kind), ref.ID).
		First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find excluded rule")
	}

	return toRuleDomain(&ruleM), nil
}

// FindRulesForResources returns all rules for country linked to any of refs.
func (repo *ruleRepository) FindRulesForResources(ctx context.Context, refs []entity.ResourceRef, country string) ([]*entity.Rule, error) {
	if len(refs) == 0 {
		return []*entity.Rule{}, nil
	}

	pairs := refPairs(refs)

	query := repo.db.WithContext(ctx).
		Select("DISTINCT delivery_rules.*").
		Joins("JOIN rule_resources rr ON rr.rule_id = delivery_rules.id").
		Where("(rr.kind, rr.resource_id) IN ?", pairs)

	if country != "" {
		query = query.Where("LOWER(delivery_rules.country) = LOWER(?)", country)
	}

	var ruleModels []*model.DeliveryRuleModel

	if err := query.
		Preload("Resources", "(kind, resource_id) IN ?", pairs).
		Order("delivery_rules.created_at DESC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rules for resources")
	}

	rules := make([]*entity.Rule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toRuleDomain(ruleM))
	}

	return rules, nil
}

// CountZipScopedRules counts zip-restricted rules for country linked to any of refs.
func (repo *ruleRepository) CountZipScopedRules(ctx context.Context, refs []entity.ResourceRef, country string) (int64, error) {
	if len(refs) == 0 {
		return 0, nil
	}

	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryRuleModel{}).
		Distinct("delivery_rules.id").
		Joins("JOIN rule_resources rr ON rr.rule_id = delivery_rules.id").
		Where("(rr.kind, rr.resource_id) IN ?", refPairs(refs)).
		Where("LOWER(delivery_rules.country) = LOWER(?)", country).
		Where("delivery_rules.zip_codes <> ''").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count zip scoped rules")
	}

	return count, nil
}

// FindOverlappingRule returns the shop's rule for country sharing an association with refs.
func (repo *ruleRepository) FindOverlappingRule(ctx context.Context, shop, country string, refs []entity.ResourceRef) (*entity.Rule, error) {
	if len(refs) == 0 {
		return nil, repository.ErrRuleNotFound
	}

	var ruleM model.DeliveryRuleModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN rule_resources rr ON rr.rule_id = delivery_rules.id").
		Where("delivery_rules.shop = ?", shop).
		Where("LOWER(delivery_rules.country) = LOWER(?)", country).
		Where("(rr.kind, rr.resource_id) IN ?", refPairs(refs)).
		Preload("Resources").
		First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find overlapping rule")
	}

	return toRuleDomain(&ruleM), nil
}

// FindConflictingRules returns the shop's rules for country whose zip scope
// collides with the incoming one, restricted to rules sharing an association with refs.
func (repo *ruleRepository) FindConflictingRules(ctx context.Context, shop, country, zipCodes string, zipCodeType entity.ZipCodeType, refs []entity.ResourceRef) ([]*entity.Rule, error) {
	if len(refs) == 0 {
		return []*entity.Rule{}, nil
	}

	query := repo.db.WithContext(ctx).
		Select("DISTINCT delivery_rules.*").
		Joins("JOIN rule_resources rr ON rr.rule_id = delivery_rules.id").
		Where("delivery_rules.shop = ?", shop).
		Where("LOWER(delivery_rules.country) = LOWER(?)", country).
		Where("(rr.kind, rr.resource_id) IN ?", refPairs(refs))

	if zipCodes != "" {
		// A whole-country rule collides with any zip-restricted one.
		query = query.Where(
			"(delivery_rules.zip_codes = ? AND delivery_rules.zip_code_type = ?) OR delivery_rules.zip_codes = ''",
			zipCodes, string(zipCodeType),
		)
	} else {
		query = query.Where("delivery_rules.zip_codes = ''")
	}

	var ruleModels []*model.DeliveryRuleModel

	if err := query.
		Preload("Resources").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conflicting rules")
	}

	rules := make([]*entity.Rule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toRuleDomain(ruleM))
	}

	return rules, nil
}

// FindNotifiableAssociation returns a notifications-enabled association for ref
// whose owning rule targets country.
func (repo *ruleRepository) FindNotifiableAssociation(ctx context.Context, ref entity.ResourceRef, country string) (*entity.ResourceAssociation, error) {
	var assocM model.RuleResourceModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN delivery_rules dr ON dr.id = rule_resources.rule_id").
		Where("rule_resources.kind = ? AND rule_resources.resource_id = ?", string(ref.Kind), ref.ID).
		Where("rule_resources.notifications_enabled = ?", true).
		Where("LOWER(dr.country) = LOWER(?)", country).
		First(&assocM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssociationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notifiable association")
	}

	return toAssociationDomain(&assocM), nil
}

// CreateRule persists a new rule's scalar fields.
func (repo *ruleRepository) CreateRule(ctx context.Context, rule *entity.Rule) error {
	ruleM := fromRuleDomain(rule)

	if err := repo.db.WithContext(ctx).Omit("Resources").Create(ruleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "rule already exists")
		}

		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required rule information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rule")
	}

	rule.ID = ruleM.ID
	rule.CreatedAt = ruleM.CreatedAt

	return nil
}

// UpdateRule overwrites the scalar fields of an existing rule.
func (repo *ruleRepository) UpdateRule(ctx context.Context, rule *entity.Rule) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryRuleModel{}).
		Where("id = ?", rule.ID).
		Updates(map[string]any{
			"country":          rule.Country,
			"delivery_time":    rule.DeliveryTime,
			"message":          rule.Message,
			"event_name":       rule.EventName,
			"start_date":       rule.StartDate,
			"end_date":         rule.EndDate,
			"shipping_method":  rule.ShippingMethod,
			"pickup_available": rule.PickupAvailable,
			"local_delivery":   rule.LocalDelivery,
			"zip_codes":        rule.ZipCodes,
			"zip_code_type":    string(rule.ZipCodeType),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRuleNotFound
	}

	return nil
}

// UpsertAssociation creates or updates the (rule, kind, resource) link.
func (repo *ruleRepository) UpsertAssociation(ctx context.Context, assoc *entity.ResourceAssociation) error {
	assocM := fromAssociationDomain(assoc)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "rule_id"}, {Name: "kind"}, {Name: "resource_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"excluded":              assocM.Excluded,
				"notifications_enabled": assocM.NotificationsEnabled,
				"updated_at":            time.Now(),
			}),
		}).
		Create(assocM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRuleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rule resource")
	}

	return nil
}

// ListRules returns the shop's rules with all associations loaded, newest first.
func (repo *ruleRepository) ListRules(ctx context.Context, shop string) ([]*entity.Rule, error) {
	var ruleModels []*model.DeliveryRuleModel

	if err := repo.db.WithContext(ctx).
		Where("shop = ?", shop).
		Preload("Resources").
		Order("created_at DESC").
		Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rules")
	}

	rules := make([]*entity.Rule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toRuleDomain(ruleM))
	}

	return rules, nil
}

// --- Mapper Functions ---

// toRuleDomain converts a GORM DeliveryRuleModel to a domain Rule entity.
func toRuleDomain(data *model.DeliveryRuleModel) *entity.Rule {
	if data == nil {
		return nil
	}

	associations := make([]entity.ResourceAssociation, 0, len(data.Resources))
	for i := range data.Resources {
		associations = append(associations, *toAssociationDomain(&data.Resources[i]))
	}

	return &entity.Rule{
		ID:              data.ID,
		Shop:            data.Shop,
		Country:         data.Country,
		DeliveryTime:    data.DeliveryTime,
		Message:         data.Message,
		EventName:       data.EventName,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		ShippingMethod:  data.ShippingMethod,
		PickupAvailable: data.PickupAvailable,
		LocalDelivery:   data.LocalDelivery,
		ZipCodes:        data.ZipCodes,
		ZipCodeType:     entity.ZipCodeType(data.ZipCodeType),
		CreatedAt:       data.CreatedAt,
		Associations:    associations,
	}
}

// fromRuleDomain converts a domain Rule entity to a GORM DeliveryRuleModel.
func fromRuleDomain(data *entity.Rule) *model.DeliveryRuleModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryRuleModel{
		ID:              data.ID,
		Shop:            data.Shop,
		Country:         data.Country,
		DeliveryTime:    data.DeliveryTime,
		Message:         data.Message,
		EventName:       data.EventName,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		ShippingMethod:  data.ShippingMethod,
		PickupAvailable: data.PickupAvailable,
		LocalDelivery:   data.LocalDelivery,
		ZipCodes:        data.ZipCodes,
		ZipCodeType:     string(data.ZipCodeType),
		CreatedAt:       data.CreatedAt,
	}
}

// toAssociationDomain converts a GORM RuleResourceModel to a domain ResourceAssociation.
func toAssociationDomain(data *model.RuleResourceModel) *entity.ResourceAssociation {
	if data == nil {
		return nil
	}

	return &entity.ResourceAssociation{
		RuleID:               data.RuleID,
		Kind:                 entity.ResourceKind(data.Kind),
		ResourceID:           data.ResourceID,
		Excluded:             data.Excluded,
		NotificationsEnabled: data.NotificationsEnabled,
	}
}

// fromAssociationDomain converts a domain ResourceAssociation to a GORM RuleResourceModel.
func fromAssociationDomain(data *entity.ResourceAssociation) *model.RuleResourceModel {
	if data == nil {
		return nil
	}

	return &model.RuleResourceModel{
		RuleID:               data.RuleID,
		Kind:                 string(data.Kind),
		ResourceID:           data.ResourceID,
		Excluded:             data.Excluded,
		NotificationsEnabled: data.NotificationsEnabled,
	}
}
