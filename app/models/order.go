package models

import "gorm.io/gorm"

// Order is a purchase snapshot. Title, image and price are copied from
// the listing at purchase time so later edits to the listing never
// change an already-placed order.
type Order struct {
	gorm.Model
	ShopkeeperID uint `gorm:"not null;index" json:"shopkeeper_id"`
	ListingID    uint `gorm:"not null"       json:"listing_id"`

	Quantity        int     `gorm:"not null"  json:"quantity"`
	Title           string  `gorm:"size:255"  json:"title"`
	Image           string  `gorm:"size:512"  json:"image"`
	PriceAtPurchase float64 `gorm:"not null"  json:"price_at_purchase"`
}
