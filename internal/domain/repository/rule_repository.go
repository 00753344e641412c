// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shipway/internal/domain/entity"
	"shipway/internal/errors"
)

// Domain-specific errors for rule persistence.
var (
	// ErrRuleNotFound is returned when no rule matches a lookup.
	ErrRuleNotFound = errors.New("rule not found")
	// ErrAssociationNotFound is returned when no resource association matches a lookup.
	ErrAssociationNotFound = errors.New("resource association not found")
)

// RuleRepository defines the interface for rule-related database operations.
//
// All country comparisons are case-insensitive. Resource ids passed in are
// expected to be normalized (GID prefix stripped) by the caller.
type RuleRepository interface {
	// FindExcludedRule returns a rule targeting country that carries an
	// excluded association for the given resource. The matching association
	// is loaded on the returned rule. ErrRuleNotFound when none exists.
	FindExcludedRule(ctx context.Context, ref entity.ResourceRef, country string) (*entity.Rule, error)

	// FindRulesForResources returns all rules for country associated with any
	// of the given resources, newest first. An empty country matches every
	// country. Only the associations matching refs are loaded on each
	// returned rule.
	FindRulesForResources(ctx context.Context, refs []entity.ResourceRef, country string) ([]*entity.Rule, error)

	// CountZipScopedRules counts rules for country associated with any of the
	// given resources that carry a non-empty zip specification.
	CountZipScopedRules(ctx context.Context, refs []entity.ResourceRef, country string) (int64, error)

	// FindOverlappingRule returns the shop's rule for country sharing at
	// least one association with refs, with ALL of its associations loaded.
	// ErrRuleNotFound when none exists.
	FindOverlappingRule(ctx context.Context, shop, country string, refs []entity.ResourceRef) (*entity.Rule, error)

	// FindConflictingRules returns the shop's rules for country whose zip
	// scope collides with the incoming one: identical zipCodes+zipCodeType,
	// or a whole-country rule when zipCodes is non-empty. Only rules sharing
	// at least one association with refs are returned.
	FindConflictingRules(ctx context.Context, shop, country, zipCodes string, zipCodeType entity.ZipCodeType, refs []entity.ResourceRef) ([]*entity.Rule, error)

	// FindNotifiableAssociation returns an association for the given resource
	// with notifications enabled whose owning rule targets country.
	// ErrAssociationNotFound when none exists.
	FindNotifiableAssociation(ctx context.Context, ref entity.ResourceRef, country string) (*entity.ResourceAssociation, error)

	// CreateRule persists a new rule (scalar fields only; associations are
	// upserted separately).
	CreateRule(ctx context.Context, rule *entity.Rule) error

	// UpdateRule overwrites the scalar fields of an existing rule.
	UpdateRule(ctx context.Context, rule *entity.Rule) error

	// UpsertAssociation creates or updates the (rule, kind, resource) link.
	UpsertAssociation(ctx context.Context, assoc *entity.ResourceAssociation) error

	// ListRules returns the shop's rules with all associations loaded,
	// newest first.
	ListRules(ctx context.Context, shop string) ([]*entity.Rule, error)
}
