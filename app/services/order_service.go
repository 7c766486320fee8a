package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Saurav-S-Mehta-07/RetailEdge/app/models"
	"github.com/Saurav-S-Mehta-07/RetailEdge/app/repositories"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/event"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/metrics"
)

// EventOrderPlaced is fired after a purchase is persisted. The payload
// is the stored models.Order.
const EventOrderPlaced = "order.placed"

// ErrInvalidQuantity is returned when a purchase asks for less than one
// unit.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// OrderService implements the purchase and order-list operations.
type OrderService struct {
	orders   *repositories.OrderRepository
	listings *repositories.ListingRepository
}

func NewOrderService(orders *repositories.OrderRepository, listings *repositories.ListingRepository) *OrderService {
	return &OrderService{orders: orders, listings: listings}
}

// Purchase snapshots the listing's title, image and selling price into
// a new order row. Later edits to the listing never touch the snapshot.
// Stock is not checked or decremented.
func (s *OrderService) Purchase(shopkeeperID, listingID uint, quantity int) (models.Order, error) {
	if quantity < 1 {
		return models.Order{}, ErrInvalidQuantity
	}

	l, err := s.listings.FindByID(listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, err
	}

	o := models.Order{
		ShopkeeperID:    shopkeeperID,
		ListingID:       l.ID,
		Quantity:        quantity,
		Title:           l.Name,
		Image:           l.Image,
		PriceAtPurchase: l.SellingPrice,
	}
	if err := s.orders.Create(&o); err != nil {
		return models.Order{}, err
	}

	metrics.OrdersPlaced.Inc()
	event.FireAsync(EventOrderPlaced, o)
	return o, nil
}

// OwnedBy lists the shopkeeper's orders.
func (s *OrderService) OwnedBy(shopkeeperID uint) ([]models.Order, error) {
	return s.orders.OwnedBy(shopkeeperID)
}

// Delete removes an order, refusing when it does not belong to the
// shopkeeper.
func (s *OrderService) Delete(id, shopkeeperID uint) error {
	n, err := s.orders.DeleteOwned(id, shopkeeperID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
