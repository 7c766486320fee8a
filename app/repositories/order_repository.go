package repositories

import (
	"gorm.io/gorm"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var o models.Order
	err := r.db.First(&o, id).Error
	return o, err
}

// OwnedBy returns all orders placed by a shopkeeper, newest first.
func (r *OrderRepository) OwnedBy(shopkeeperID uint) ([]models.Order, error) {
	var os []models.Order
	err := r.db.Where("shopkeeper_id = ?", shopkeeperID).Order("id desc").Find(&os).Error
	return os, err
}

// Create persists a new order snapshot.
func (r *OrderRepository) Create(o *models.Order) error {
	return r.db.Create(o).Error
}

// DeleteOwned removes an order only when it belongs to the given
// shopkeeper. Returns the number of rows removed.
func (r *OrderRepository) DeleteOwned(id, shopkeeperID uint) (int64, error) {
	res := r.db.Where("id = ? AND shopkeeper_id = ?", id, shopkeeperID).
		Delete(&models.Order{})
	return res.RowsAffected, res.Error
}
