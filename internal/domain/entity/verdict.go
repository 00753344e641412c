package entity

import "time"

// Verdict is the availability answer served to the storefront widget.
// It is a terminal, side-effect-free read: exactly one verdict per query.
type Verdict struct {
	Available            bool
	Country              string
	ProductID            string
	CollectionID         string
	ZipCode              string
	Fallback             bool // True when no rule confidently governs the query.
	Message              string
	DeliveryTime         string
	ShippingMethod       string
	EventName            string
	AvailableFrom        string // Display-formatted start of the rule's window.
	AvailableUntil       string // Display-formatted end of the rule's window.
	EndDate              string // RFC 3339 end bound, for machine consumption.
	EstimatedDelivery    *time.Time
	PickupAvailable      bool
	LocalDelivery        string
	NotificationsEnabled bool

	// Degraded carries the internal failure reason when the engine masked an
	// error and fell back, so callers and tests can tell a genuine fallback
	// from a swallowed bug. Empty on a clean resolution.
	Degraded string

	Debug VerdictDebug
}

// VerdictDebug is the diagnostic block attached to every verdict.
type VerdictDebug struct {
	CountryDetected string `json:"countryDetected,omitempty"`
	IPUsed          string `json:"ipUsed,omitempty"`
	RuleID          string `json:"ruleId,omitempty"`
	StartDate       string `json:"startDate,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	ZipCode         string `json:"zipCode,omitempty"`
	TotalRules      int    `json:"totalRules,omitempty"`
	Error           string `json:"error,omitempty"`
}
