package models

import "gorm.io/gorm"

// Shopkeeper is the vendor account that owns listings and orders.
type Shopkeeper struct {
	gorm.Model
	Name            string `gorm:"size:255;not null"          json:"name"`
	Email           string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password        string `gorm:"size:255;not null"          json:"-"` // bcrypt hash, never serialised
	Phone           string `gorm:"size:20"                    json:"phone"`
	ShopName        string `gorm:"size:255"                   json:"shop_name"`
	Location        string `gorm:"size:255"                   json:"location"`
	City            string `gorm:"size:100"                   json:"city"`
	GSTNumber       string `gorm:"size:20"                    json:"gst_number"`
	EstablishedYear int    `json:"established_year"`
	IsVerified      bool   `gorm:"default:false"              json:"is_verified"`

	Listings []Listing `gorm:"foreignKey:ShopkeeperID" json:"listings,omitempty"`
	Orders   []Order   `gorm:"foreignKey:ShopkeeperID" json:"orders,omitempty"`
}
