package main

import (
	"shipway/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DeliveryRuleModel{},
		model.RuleResourceModel{},
		model.NotificationSignupModel{},
		model.CatalogResourceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
