package migration

import (
	"tally/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.AgreementModel{},
		&models.ServiceModel{},
		&models.ServiceSystemModel{},
		&models.UserListModel{},
		&models.UserListItemModel{},
	}
}
