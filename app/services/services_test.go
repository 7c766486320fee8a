package services_test

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/repositories"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/services"
)

// newTestDB opens a throwaway in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Shopkeeper{}, &models.Listing{}, &models.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newListingService(t *testing.T) (*services.ListingService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewListingService(repositories.NewListingRepository(db)), db
}

// mustCreate inserts a listing and fails the test on error.
func mustCreate(t *testing.T, svc *services.ListingService, owner uint, in services.ListingInput) models.Listing {
	t.Helper()
	l, errs, err := svc.Create(owner, in)
	if err != nil {
		t.Fatalf("create listing: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("create listing validation: %v", errs)
	}
	return l
}
