// Package model contains the GORM-specific structs mapping domain entities to tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryRuleModel is the GORM-specific struct for the 'delivery_rules' table.
// One row per shop-authored delivery policy; resource links live in 'rule_resources'.
type DeliveryRuleModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Shop            string    `gorm:"not null;index"`
	Country         string    `gorm:"not null;index"`
	DeliveryTime    string    `gorm:"not null"`
	Message         string
	EventName       string
	StartDate       *time.Time
	EndDate         *time.Time
	ShippingMethod  string
	PickupAvailable bool `gorm:"not null;default:false"`
	LocalDelivery   string
	ZipCodes        string
	ZipCodeType     string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Resources []RuleResourceModel `gorm:"foreignKey:RuleID"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryRuleModel) TableName() string {
	return "delivery_rules"
}

// RuleResourceModel is the GORM-specific struct for the 'rule_resources' table.
// It links one rule to one catalog resource of any kind.
type RuleResourceModel struct {
	RuleID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Kind                 string    `gorm:"primary_key;index:idx_rule_resources_lookup"`
	ResourceID           string    `gorm:"primary_key;index:idx_rule_resources_lookup"`
	Excluded             bool      `gorm:"not null;default:false"`
	NotificationsEnabled bool      `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (RuleResourceModel) TableName() string {
	return "rule_resources"
}
