// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ZipCodeType selects how a rule's zip specification is interpreted.
type ZipCodeType string

const (
	// ZipInclusive means the rule applies only to zip codes matched by the specification.
	ZipInclusive ZipCodeType = "inclusive"
	// ZipExclusive means the rule applies everywhere except the matched zip codes.
	ZipExclusive ZipCodeType = "exclusive"
)

// Rule is a shop-authored delivery policy binding a country (and optional zip
// scope and date window) to delivery metadata and a set of resource associations.
type Rule struct {
	ID              uuid.UUID             `json:"id"`
	Shop            string                `json:"shop"`             // Tenant identifier (shop domain).
	Country         string                `json:"country"`          // Free text, compared case-insensitively.
	DeliveryTime    string                `json:"delivery_time"`    // Customer-facing duration text, e.g. "2-3 days".
	Message         string                `json:"message"`          // Optional customer-facing message.
	EventName       string                `json:"event_name"`       // Optional label, e.g. a sale event.
	StartDate       *time.Time            `json:"start_date"`       // Inclusive lower date bound; nil means unbounded.
	EndDate         *time.Time            `json:"end_date"`         // Inclusive upper date bound; nil means unbounded.
	ShippingMethod  string                `json:"shipping_method"`  //
	PickupAvailable bool                  `json:"pickup_available"` //
	LocalDelivery   string                `json:"local_delivery"`   // Optional local delivery note.
	ZipCodes        string                `json:"zip_codes"`        // Comma-separated zip specification; empty means whole country.
	ZipCodeType     ZipCodeType           `json:"zip_code_type"`    //
	CreatedAt       time.Time             `json:"created_at"`       //
	Associations    []ResourceAssociation `json:"associations"`     // Loaded on demand; may hold only the matching subset.
}

// HasZipScope reports whether the rule is restricted to specific zip codes.
func (r *Rule) HasZipScope() bool {
	return r.ZipCodes != ""
}

// AssociationFor returns the rule's association for the given resource, if loaded.
func (r *Rule) AssociationFor(ref ResourceRef) *ResourceAssociation {
	for i := range r.Associations {
		if r.Associations[i].Kind == ref.Kind && r.Associations[i].ResourceID == ref.ID {
			return &r.Associations[i]
		}
	}

	return nil
}
