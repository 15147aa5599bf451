// Package pgtest starts a disposable PostgreSQL for integration suites and
// seeds the tables the fulfillment core only reads.
package pgtest

import (
	"context"
	"time"

	postgresadapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/accountrepo"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every table in truncation order.
const Tables = "reviews, location_updates, delivery_trackings, order_items, orders, menu_items, restaurants, addresses, users"

// Start runs a postgres container and returns a migrated connection.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := postgresadapter.Open(dsn)
	if err != nil {
		return container, nil, err
	}

	if err = postgresadapter.Migrate(db); err != nil {
		return container, nil, err
	}
	return container, db, nil
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}

// Fixture is a minimal catalog: a vendor with one open restaurant and two
// menu items, a customer with an address and a delivery partner.
type Fixture struct {
	Vendor     *account.User
	Customer   *account.User
	Partner    *account.User
	Address    *account.Address
	Restaurant *catalog.Restaurant
	Biryani    *catalog.MenuItem
	Naan       *catalog.MenuItem
}

// Seed inserts a fresh Fixture.
func Seed(ctx context.Context, db *gorm.DB) (Fixture, error) {
	vendor := account.RestoreUser(kernel.NewUUID(), "Vikram", kernel.RoleVendor)
	customer := account.RestoreUser(kernel.NewUUID(), "Meera", kernel.RoleCustomer)
	partner := account.RestoreUser(kernel.NewUUID(), "Ravi", kernel.RoleDelivery)

	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	if err != nil {
		return Fixture{}, err
	}
	address := account.RestoreAddress(kernel.NewUUID(), customer.ID(), "Home", &point)

	restaurant := catalog.RestoreRestaurant(kernel.NewUUID(), vendor.ID(), "Spice Route", true, 0)
	biryaniPrice, err := kernel.MoneyFromString("250.00")
	if err != nil {
		return Fixture{}, err
	}
	naanPrice, err := kernel.MoneyFromString("40.00")
	if err != nil {
		return Fixture{}, err
	}
	biryani := catalog.RestoreMenuItem(kernel.NewUUID(), restaurant.ID(), "Biryani", biryaniPrice, true, 0)
	naan := catalog.RestoreMenuItem(kernel.NewUUID(), restaurant.ID(), "Naan", naanPrice, true, 0)

	tx := db.WithContext(ctx)
	users := []accountrepo.UserDTO{
		accountrepo.UserFromDomain(vendor),
		accountrepo.UserFromDomain(customer),
		accountrepo.UserFromDomain(partner),
	}
	if err = tx.Create(&users).Error; err != nil {
		return Fixture{}, err
	}
	addressDTO := accountrepo.AddressFromDomain(address)
	if err = tx.Create(&addressDTO).Error; err != nil {
		return Fixture{}, err
	}
	restaurantDTO := catalogrepo.RestaurantFromDomain(restaurant)
	if err = tx.Create(&restaurantDTO).Error; err != nil {
		return Fixture{}, err
	}
	items := []catalogrepo.MenuItemDTO{
		catalogrepo.MenuItemFromDomain(biryani),
		catalogrepo.MenuItemFromDomain(naan),
	}
	if err = tx.Create(&items).Error; err != nil {
		return Fixture{}, err
	}

	return Fixture{
		Vendor:     vendor,
		Customer:   customer,
		Partner:    partner,
		Address:    address,
		Restaurant: restaurant,
		Biryani:    biryani,
		Naan:       naan,
	}, nil
}
