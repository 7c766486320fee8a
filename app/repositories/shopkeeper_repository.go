package repositories

import (
	"gorm.io/gorm"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
)

// ShopkeeperRepository handles database operations for Shopkeeper.
type ShopkeeperRepository struct {
	db *gorm.DB
}

func NewShopkeeperRepository(db *gorm.DB) *ShopkeeperRepository {
	return &ShopkeeperRepository{db: db}
}

// FindByEmail looks up a shopkeeper by email address.
func (r *ShopkeeperRepository) FindByEmail(email string) (models.Shopkeeper, error) {
	var sk models.Shopkeeper
	err := r.db.Where("email = ?", email).First(&sk).Error
	return sk, err
}

// FindByID looks up a shopkeeper by primary key.
func (r *ShopkeeperRepository) FindByID(id uint) (models.Shopkeeper, error) {
	var sk models.Shopkeeper
	err := r.db.First(&sk, id).Error
	return sk, err
}

// Create persists a new shopkeeper record.
func (r *ShopkeeperRepository) Create(sk *models.Shopkeeper) error {
	return r.db.Create(sk).Error
}

// Update persists changes to an existing shopkeeper.
func (r *ShopkeeperRepository) Update(sk *models.Shopkeeper) error {
	return r.db.Save(sk).Error
}

// Count returns the total number of shopkeeper accounts.
func (r *ShopkeeperRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Shopkeeper{}).Count(&n).Error
	return n, err
}
