package models

import (
	"github.com/shopspring/decimal"
)

// OrderStatus is the admin-driven lifecycle of an order. Customers never
// change status; they only create orders in PendingCollection.
type OrderStatus string

const (
	StatusPendingCollection OrderStatus = "Pending Collection"
	StatusInProgress        OrderStatus = "In Progress"
	StatusReadyForDelivery  OrderStatus = "Ready for Delivery"
	StatusCompleted         OrderStatus = "Completed"
	StatusCancelled         OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPendingCollection, StatusInProgress, StatusReadyForDelivery,
		StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a frozen snapshot of a cart line. It deliberately carries its
// own name and price so later catalog edits never alter historical orders.
type OrderItem struct {
	ServiceID string          `json:"serviceId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order is the persisted order record.
type Order struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customerId"`
	CustomerName      string          `json:"customerName"`
	Date              string          `json:"date"`
	Total             decimal.Decimal `json:"total"`
	Status            OrderStatus     `json:"status"`
	Items             []OrderItem     `json:"items"`
	Phone             string          `json:"phone,omitempty"`
	CollectionAddress string          `json:"collectionAddress"`
	DeliveryAddress   string          `json:"deliveryAddress"`
	CollectionTime    string          `json:"collectionTime"`
	DeliveryTime      string          `json:"deliveryTime"`
}
