// file: internals/databases/migrate.go
package database

import (
	"gorm.io/gorm"

	financeModel "schooltrans_backend/internals/features/finance/fees/model"
	transportModel "schooltrans_backend/internals/features/transport/model"
	userModel "schooltrans_backend/internals/features/users/auth/model"
)

// MigrateAll runs AutoMigrate over every model in dependency order. Used at
// startup when DB_AUTOMIGRATE=true and by the test suites.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.User{},
		&transportModel.Student{},
		&transportModel.Route{},
		&transportModel.PickupPoint{},
		&transportModel.Vehicle{},
		&transportModel.RoutePickupPoint{},
		&transportModel.RouteVehicleAssignment{},
		&transportModel.TransportFeeMaster{},
		&financeModel.FeeType{},
		&financeModel.FeeMaster{},
		&financeModel.StudentFeeAssignment{},
		&transportModel.StudentTransportAssignment{},
	)
}
