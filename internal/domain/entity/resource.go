package entity

import (
	"strings"

	"github.com/google/uuid"
)

// ResourceKind tags which catalog dimension a rule association targets.
type ResourceKind string

const (
	ResourceProduct    ResourceKind = "product"
	ResourceCollection ResourceKind = "collection"
	ResourceVendor     ResourceKind = "vendor"
	ResourceTag        ResourceKind = "tag"
)

// Specificity orders kinds for deterministic rule selection:
// a product-level association beats a collection-level one, and so on.
func (k ResourceKind) Specificity() int {
	switch k {
	case ResourceProduct:
		return 0
	case ResourceCollection:
		return 1
	case ResourceVendor:
		return 2
	case ResourceTag:
		return 3
	default:
		return 4
	}
}

// Valid reports whether k is one of the four known kinds.
func (k ResourceKind) Valid() bool {
	switch k {
	case ResourceProduct, ResourceCollection, ResourceVendor, ResourceTag:
		return true
	default:
		return false
	}
}

// ResourceRef identifies one catalog resource. Products and collections carry
// a numeric platform id; vendors and tags carry their name.
type ResourceRef struct {
	Kind ResourceKind `json:"kind"`
	ID   string       `json:"id"`
}

// NormalizeResourceID strips the host-platform GID prefix from product and
// collection identifiers. Vendor and tag names pass through untouched.
func NormalizeResourceID(kind ResourceKind, id string) string {
	switch kind {
	case ResourceProduct:
		return strings.TrimPrefix(id, "gid://shopify/Product/")
	case ResourceCollection:
		return strings.TrimPrefix(id, "gid://shopify/Collection/")
	default:
		return id
	}
}

// ResourceAssociation links a Rule to one catalog resource, carrying the
// exclusion and notification flags.
type ResourceAssociation struct {
	RuleID               uuid.UUID    `json:"rule_id"`
	Kind                 ResourceKind `json:"kind"`
	ResourceID           string       `json:"resource_id"`
	Excluded             bool         `json:"excluded"`              // Carves the resource OUT of the rule's scope.
	NotificationsEnabled bool         `json:"notifications_enabled"` // Shoppers may sign up for availability notices.
}

// Ref returns the association's resource reference.
func (a *ResourceAssociation) Ref() ResourceRef {
	return ResourceRef{Kind: a.Kind, ID: a.ResourceID}
}
