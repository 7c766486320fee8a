package repositories

import (
	"gorm.io/gorm"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
)

// ListingRepository handles database operations for Listing.
type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// FindByID looks up a listing by primary key.
func (r *ListingRepository) FindByID(id uint) (models.Listing, error) {
	var l models.Listing
	err := r.db.First(&l, id).Error
	return l, err
}

// OwnedBy returns all listings belonging to a shopkeeper.
func (r *ListingRepository) OwnedBy(shopkeeperID uint) ([]models.Listing, error) {
	var ls []models.Listing
	err := r.db.Where("shopkeeper_id = ?", shopkeeperID).Order("id").Find(&ls).Error
	return ls, err
}

// OwnedByInCategory narrows a shopkeeper's listings to an exact
// category match.
func (r *ListingRepository) OwnedByInCategory(shopkeeperID uint, category string) ([]models.Listing, error) {
	var ls []models.Listing
	err := r.db.Where("shopkeeper_id = ? AND category = ?", shopkeeperID, category).
		Order("id").Find(&ls).Error
	return ls, err
}

// Categories returns the distinct category values across a
// shopkeeper's listings.
func (r *ListingRepository) Categories(shopkeeperID uint) ([]string, error) {
	var cats []string
	err := r.db.Model(&models.Listing{}).
		Where("shopkeeper_id = ?", shopkeeperID).
		Distinct("category").
		Pluck("category", &cats).Error
	return cats, err
}

// Create persists a new listing.
func (r *ListingRepository) Create(l *models.Listing) error {
	return r.db.Create(l).Error
}

// Update persists changes to an existing listing.
func (r *ListingRepository) Update(l *models.Listing) error {
	return r.db.Save(l).Error
}

// DeleteOwned removes a listing only when it belongs to the given
// shopkeeper. Returns the number of rows removed.
func (r *ListingRepository) DeleteOwned(id, shopkeeperID uint) (int64, error) {
	res := r.db.Where("id = ? AND shopkeeper_id = ?", id, shopkeeperID).
		Delete(&models.Listing{})
	return res.RowsAffected, res.Error
}

// LowStock returns listings whose stock has fallen to or below their
// alert threshold.
func (r *ListingRepository) LowStock() ([]models.Listing, error) {
	var ls []models.Listing
	err := r.db.Where("stock <= min_stock_alert").Find(&ls).Error
	return ls, err
}

// All returns every listing, newest first, capped at limit.
func (r *ListingRepository) All(limit int) ([]models.Listing, error) {
	var ls []models.Listing
	err := r.db.Order("id desc").Limit(limit).Find(&ls).Error
	return ls, err
}
