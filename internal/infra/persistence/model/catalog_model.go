package model

import "time"

// CatalogResourceModel is the GORM-specific struct for the 'catalog_resources' table.
// It shadows host-platform catalog entities referenced by rules.
type CatalogResourceModel struct {
	Shop       string `gorm:"primary_key"`
	Kind       string `gorm:"primary_key"`
	ResourceID string `gorm:"primary_key"`
	Title      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatalogResourceModel) TableName() string {
	return "catalog_resources"
}
