package postgres

import (
	"foodorder/internal/adapters/out/postgres/accountrepo"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/reviewrepo"
	"foodorder/internal/adapters/out/postgres/trackingrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL. TranslateError is required by the
// repositories to recognise unique violations.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates every table the service reads or writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.UserDTO{},
		&accountrepo.AddressDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&trackingrepo.TrackingDTO{},
		&trackingrepo.LocationUpdateDTO{},
		&reviewrepo.ReviewDTO{},
	)
}
