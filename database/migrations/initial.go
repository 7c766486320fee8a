package migrations

import (
	"gorm.io/gorm"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/migration"
)

func init() {
	migration.Register("20250801000000_create_shopkeepers_table", &CreateShopkeepersTable{})
	migration.Register("20250801000001_create_listings_table", &CreateListingsTable{})
	migration.Register("20250801000002_create_orders_table", &CreateOrdersTable{})
}

// -------- 0001: shopkeepers --------

type CreateShopkeepersTable struct{}

func (m *CreateShopkeepersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Shopkeeper{})
}

func (m *CreateShopkeepersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("shopkeepers")
}

// -------- 0002: listings --------

type CreateListingsTable struct{}

func (m *CreateListingsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Listing{})
}

func (m *CreateListingsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("listings")
}

// -------- 0003: orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}
