package store

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"lavapp/internal/models"
)

// OrderInput is what the portal hands over on submission. Everything else on
// the order (id, date, status, delivery fields) is assigned here.
type OrderInput struct {
	CustomerName   string
	Address        string
	Phone          string
	Items          []models.OrderItem
	Total          decimal.Decimal
	CollectionTime string
}

// CreateOrder assigns the next sequential id, stamps today's date and the
// default status, and prepends the record so the collection stays
// newest-first without sorting. The returned order is a deep copy; callers
// never hold a live reference into the store.
func (s *Store) CreateOrder(input OrderInput) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.Order{
		ID:           fmt.Sprintf("ord%03d", len(s.orders)+1),
		CustomerID:   fmt.Sprintf("cust%d", len(s.customers)+1),
		CustomerName: input.CustomerName,
		Date:         s.today(),
		Total:        input.Total,
		Status:       models.StatusPendingCollection,
		Items:        cloneItems(input.Items),
		Phone:        input.Phone,
		// Collection and delivery happen at the same door until a
		// separate delivery address is collected in the wizard.
		CollectionAddress: input.Address,
		DeliveryAddress:   input.Address,
		CollectionTime:    input.CollectionTime,
		DeliveryTime:      "TBD",
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.customers = append(s.customers, models.Customer{
		ID:         order.CustomerID,
		Name:       input.CustomerName,
		Phone:      input.Phone,
		JoinedDate: order.Date,
		Address:    input.Address,
	})

	log.Printf("[STORE] [INFO] order %s created, total %s", order.ID, order.Total.StringFixed(2))
	return cloneOrder(order)
}

// UpdateOrderStatus replaces the status in place. An unknown id is not an
// error: it returns nil and leaves the store untouched.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			updated := cloneOrder(s.orders[i])
			return &updated
		}
	}
	return nil
}

// ListOrders returns deep copies, newest-first.
func (s *Store) ListOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	return out
}

// GetOrder looks an order up by id.
func (s *Store) GetOrder(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

// ListOrdersByCustomer filters by exact customer id.
func (s *Store) ListOrdersByCustomer(customerID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Order{}
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

// CountOrders reports how many orders exist.
func (s *Store) CountOrders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func cloneOrder(o models.Order) models.Order {
	o.Items = cloneItems(o.Items)
	return o
}

func cloneItems(items []models.OrderItem) []models.OrderItem {
	out := make([]models.OrderItem, len(items))
	copy(out, items)
	return out
}
