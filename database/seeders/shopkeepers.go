package seeders

import (
	"gorm.io/gorm"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/auth"
)

func init() {
	Register("shopkeepers", SeedShopkeepers)
	Register("listings", SeedListings)
}

// SeedShopkeepers inserts three demo shop accounts. All demo accounts
// share the password "password".
func SeedShopkeepers(db *gorm.DB) error {
	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	demo := []models.Shopkeeper{
		{
			Name:            "Saurav Mehta",
			Email:           "saurav.mehta@gmail.com",
			Password:        hash,
			Phone:           "9876543210",
			ShopName:        "Mehta Electronics",
			Location:        "Rajpur Road",
			City:            "Dehradun",
			GSTNumber:       "09ABCDE1234F1Z5",
			EstablishedYear: 2018,
			IsVerified:      true,
		},
		{
			Name:            "Aditi Sharma",
			Email:           "aditi.sharma@gmail.com",
			Password:        hash,
			Phone:           "9812345678",
			ShopName:        "Aditi Fashion Hub",
			Location:        "Connaught Place",
			City:            "New Delhi",
			GSTNumber:       "07PQRSF7890L2K3",
			EstablishedYear: 2020,
		},
		{
			Name:            "Rohit Verma",
			Email:           "rohit.verma@gmail.com",
			Password:        hash,
			Phone:           "9901234567",
			ShopName:        "Verma Supermart",
			Location:        "Civil Lines",
			City:            "Agra",
			GSTNumber:       "09LMNOP2345J7Z9",
			EstablishedYear: 2015,
			IsVerified:      true,
		},
	}

	for i := range demo {
		var existing models.Shopkeeper
		err := db.Where("email = ?", demo[i].Email).First(&existing).Error
		if err == nil {
			continue // already seeded
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&demo[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedListings gives the first demo shop a small catalogue.
func SeedListings(db *gorm.DB) error {
	var owner models.Shopkeeper
	if err := db.Where("email = ?", "saurav.mehta@gmail.com").First(&owner).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Listing{}).Where("shopkeeper_id = ?", owner.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	demo := []models.Listing{
		{
			ShopkeeperID: owner.ID, Name: "LED Bulb 9W", Brand: "Philips",
			Category: "Lighting", CostPrice: 60, SellingPrice: 99,
			Stock: 120, Unit: "pcs",
		},
		{
			ShopkeeperID: owner.ID, Name: "Extension Board", Brand: "Anchor",
			Category: "Electrical", CostPrice: 180, SellingPrice: 260,
			Discount: 5, Stock: 40, Unit: "pcs",
		},
		{
			ShopkeeperID: owner.ID, Name: "Table Fan", Brand: "Usha",
			Category: "Appliances", CostPrice: 1100, SellingPrice: 1550,
			Stock: 8, MinStockAlert: 3, Unit: "pcs",
		},
	}

	return db.Create(&demo).Error
}
