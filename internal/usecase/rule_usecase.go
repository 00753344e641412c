package usecase

import (
	"context"

	"shipway/internal/domain/entity"
)

// RuleResourceInput is one catalog resource targeted by a rule being saved.
type RuleResourceInput struct {
	Kind                 entity.ResourceKind
	ID                   string // Raw id; may carry the GID prefix.
	Title                string // Display title, stored on the catalog shadow.
	Excluded             bool
	NotificationsEnabled bool
}

// SaveRuleInput carries one rule authoring request.
type SaveRuleInput struct {
	Shop            string
	Country         string
	DeliveryTime    string
	Message         string
	EventName       string
	StartDate       string // "2006-01-02"; empty means unbounded.
	EndDate         string // "2006-01-02"; empty means unbounded.
	ShippingMethod  string
	PickupAvailable bool
	LocalDelivery   string
	ZipCodes        string
	ZipCodeType     entity.ZipCodeType
	Resources       []RuleResourceInput
}

// SaveRuleResult reports the outcome of a rule save.
type SaveRuleResult struct {
	Rule    *entity.Rule
	Updated bool // True when an overlapping rule was updated instead of created.
}

// RuleUsecase covers the merchant-facing rule authoring operations.
type RuleUsecase interface {
	// SaveRule validates the input, then creates a rule or updates the
	// overlapping one inside a single transaction. Newly reincluded
	// resources with notifications enabled trigger a notification event
	// after commit.
	SaveRule(ctx context.Context, input *SaveRuleInput) (*SaveRuleResult, error)

	// ListRules returns the shop's rules, newest first, with associations.
	ListRules(ctx context.Context, shop string) ([]*entity.Rule, error)

	// GetCatalog fetches the shop's full catalog from the host platform.
	GetCatalog(ctx context.Context, shop string) (*entity.CatalogSnapshot, error)

	// SearchCatalog searches vendors or tags by name fragment.
	SearchCatalog(ctx context.Context, shop string, kind entity.ResourceKind, query string) ([]string, error)
}
