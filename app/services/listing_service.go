package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/repositories"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/collection"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/metrics"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/validate"
)

// ListingInput carries the add/edit form fields. Only name and the two
// prices are mandatory at create time.
type ListingInput struct {
	Name         string  `json:"name"          validate:"required,max=255"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	SubCategory  string  `json:"sub_category"`
	CostPrice    float64 `json:"cost_price"    validate:"required,numeric"`
	SellingPrice float64 `json:"selling_price" validate:"required,numeric"`
	Discount     float64 `json:"discount"`
	Stock        int     `json:"stock"`
	Unit         string  `json:"unit"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
}

// Catalogue is what the category view renders: listings narrowed to a
// selected category alongside the distinct category set.
type Catalogue struct {
	Listings   []models.Listing
	Categories []string
	Selected   string
}

// ListingService implements the item catalogue operations.
type ListingService struct {
	listings *repositories.ListingRepository
}

func NewListingService(listings *repositories.ListingRepository) *ListingService {
	return &ListingService{listings: listings}
}

// Create validates the input and persists a new listing for the
// shopkeeper. Returns a field-error map when validation fails.
func (s *ListingService) Create(shopkeeperID uint, in ListingInput) (models.Listing, map[string]string, error) {
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		return models.Listing{}, errs, nil
	}

	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}

	l := models.Listing{
		ShopkeeperID: shopkeeperID,
		Name:         in.Name,
		Brand:        in.Brand,
		Category:     in.Category,
		SubCategory:  in.SubCategory,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		Discount:     in.Discount,
		Stock:        in.Stock,
		Unit:         unit,
		Image:        in.Image,
		Description:  in.Description,
	}
	if err := s.listings.Create(&l); err != nil {
		return models.Listing{}, nil, err
	}
	metrics.ListingsCreated.Inc()
	return l, nil, nil
}

// Get fetches a single listing by id.
func (s *ListingService) Get(id uint) (models.Listing, error) {
	l, err := s.listings.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Listing{}, ErrNotFound
		}
		return models.Listing{}, err
	}
	return l, nil
}

// OwnedBy returns all of a shopkeeper's listings.
func (s *ListingService) OwnedBy(shopkeeperID uint) ([]models.Listing, error) {
	return s.listings.OwnedBy(shopkeeperID)
}

// Update overwrites the listing's fields with the submitted values.
// Submitted empty strings clear the field; there is no value-or-existing
// fallback, so a field can be blanked out intentionally.
func (s *ListingService) Update(id uint, in ListingInput) (models.Listing, error) {
	l, err := s.Get(id)
	if err != nil {
		return models.Listing{}, err
	}

	l.Name = in.Name
	l.Brand = in.Brand
	l.Category = in.Category
	l.SubCategory = in.SubCategory
	l.CostPrice = in.CostPrice
	l.SellingPrice = in.SellingPrice
	l.Discount = in.Discount
	l.Stock = in.Stock
	l.Description = in.Description
	if in.Unit != "" {
		l.Unit = in.Unit
	}
	if in.Image != "" {
		l.Image = in.Image
	}

	if err := s.listings.Update(&l); err != nil {
		return models.Listing{}, err
	}
	return l, nil
}

// Delete removes a listing, refusing when it does not belong to the
// shopkeeper. The ownership check and the delete are a single guarded
// statement, so there is no second write to race against.
func (s *ListingService) Delete(id, shopkeeperID uint) error {
	n, err := s.listings.DeleteOwned(id, shopkeeperID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Catalogue computes the distinct category set for a shopkeeper and,
// when selected names a category other than "all", narrows the listings
// to an exact match.
func (s *ListingService) Catalogue(shopkeeperID uint, selected string) (Catalogue, error) {
	all, err := s.listings.OwnedBy(shopkeeperID)
	if err != nil {
		return Catalogue{}, err
	}

	categories := collection.Unique(collection.Map(all, func(l models.Listing) string {
		return l.Category
	}))

	if selected == "" {
		selected = "all"
	}

	items := all
	if selected != "all" {
		items = collection.Filter(all, func(l models.Listing) bool {
			return l.Category == selected
		})
	}

	return Catalogue{Listings: items, Categories: categories, Selected: selected}, nil
}
