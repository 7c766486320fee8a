package models

import "gorm.io/gorm"

// Listing is a product record owned by a shopkeeper. Ownership is an
// indexed foreign key, so "listings owned by X" is a query, not a
// duplicated id list on the owner.
type Listing struct {
	gorm.Model
	ShopkeeperID uint `gorm:"not null;index" json:"shopkeeper_id"`

	Name        string `gorm:"size:255;not null"  json:"name"`
	Brand       string `gorm:"size:255"           json:"brand"`
	Category    string `gorm:"size:100;index"     json:"category"`
	SubCategory string `gorm:"size:100;default:''" json:"sub_category"`

	CostPrice    float64 `gorm:"not null"       json:"cost_price"`
	SellingPrice float64 `gorm:"not null"       json:"selling_price"`
	Discount     float64 `gorm:"default:0"      json:"discount"` // percentage

	Stock         int    `gorm:"default:0"      json:"stock"`
	MinStockAlert int    `gorm:"default:5"      json:"min_stock_alert"`
	Unit          string `gorm:"size:20;default:pcs" json:"unit"`

	Image       string `gorm:"size:512"  json:"image"`
	Description string `gorm:"type:text" json:"description"`
}
