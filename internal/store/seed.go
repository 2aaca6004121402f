package store

import (
	"github.com/shopspring/decimal"

	"lavapp/internal/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seed loads the demo dataset: the portal catalog, a few customers and their
// order history, and the default business profile.
func (s *Store) seed() {
	s.services = []models.Service{
		{ID: "plan-solo", Name: "Plano SOLO", Description: "2 cestos por mês", Price: price("169.90"), Category: models.CategoryPlan, Channel: models.ChannelPlan},
		{ID: "plan-duo", Name: "Plano DUO", Description: "4 cestos por mês", Price: price("259.90"), Category: models.CategoryPlan, Channel: models.ChannelPlan},
		{ID: "plan-infinity", Name: "Plano INFINITY", Description: "Cestos ilimitados", Price: price("329.90"), Category: models.CategoryPlan, Channel: models.ChannelPlan},
		{ID: "serv-cesto", Name: "Cesto Base", Description: "Lavar, secar e dobrar", Price: price("44.90"), Category: models.CategoryBase, Channel: models.ChannelOneOff},
		{ID: "extra-detergent", Name: "Hypoallergenic Detergent", Description: "For sensitive skin", Price: price("5.00"), Category: models.CategoryExtra, Channel: models.ChannelBoth},
		{ID: "extra-stain", Name: "Stain Removal", Description: "Advanced stain treatment", Price: price("7.50"), Category: models.CategoryExtra, Channel: models.ChannelBoth},
		{ID: "care-comforter", Name: "King Size Comforter", Description: "Special care", Price: price("35.00"), Category: models.CategorySpecialCare, Channel: models.ChannelOneOff},
		{ID: "pack-eco", Name: "Eco Packaging", Description: "Recycled paper wrap", Price: price("3.50"), Category: models.CategoryPackaging, Channel: models.ChannelBoth},
	}

	s.customers = []models.Customer{
		{ID: "cust1", Name: "John Doe", Email: "john.doe@example.com", Phone: "555-1234", JoinedDate: "2023-01-15", Address: "123 Main St, Anytown, USA"},
		{ID: "cust2", Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "555-5678", JoinedDate: "2023-02-20", Address: "456 Oak Ave, Anytown, USA"},
		{ID: "cust3", Name: "Peter Jones", Email: "peter.jones@example.com", Phone: "555-8765", JoinedDate: "2023-03-10", Address: "789 Pine Ln, Anytown, USA"},
		{ID: "cust4", Name: "Mary Johnson", Email: "mary.j@example.com", Phone: "555-4321", JoinedDate: "2023-05-01", Address: "321 Elm St, Anytown, USA"},
	}

	// Newest-first, like the live collection.
	s.orders = []models.Order{
		{
			ID: "ord005", CustomerID: "cust4", CustomerName: "Mary Johnson", Date: "2024-08-01",
			Total: price("329.90"), Status: models.StatusPendingCollection,
			Items:             []models.OrderItem{{ServiceID: "plan-infinity", Name: "Plano INFINITY", Quantity: 1, Price: price("329.90")}},
			CollectionAddress: "321 Elm St", DeliveryAddress: "321 Elm St", CollectionTime: "PM Slot", DeliveryTime: "AM Slot",
		},
		{
			ID: "ord004", CustomerID: "cust1", CustomerName: "John Doe", Date: "2024-07-31",
			Total: price("89.80"), Status: models.StatusInProgress,
			Items:             []models.OrderItem{{ServiceID: "serv-cesto", Name: "Cesto Base", Quantity: 2, Price: price("44.90")}},
			CollectionAddress: "123 Main St", DeliveryAddress: "123 Main St", CollectionTime: "AM Slot", DeliveryTime: "PM Slot",
		},
		{
			ID: "ord003", CustomerID: "cust3", CustomerName: "Peter Jones", Date: "2024-07-30",
			Total: price("35.00"), Status: models.StatusReadyForDelivery,
			Items:             []models.OrderItem{{ServiceID: "care-comforter", Name: "King Size Comforter", Quantity: 1, Price: price("35.00")}},
			CollectionAddress: "789 Pine Ln", DeliveryAddress: "789 Pine Ln", CollectionTime: "AM Slot", DeliveryTime: "PM Slot",
		},
		{
			ID: "ord002", CustomerID: "cust2", CustomerName: "Jane Smith", Date: "2024-07-29",
			Total: price("169.90"), Status: models.StatusCompleted,
			Items:             []models.OrderItem{{ServiceID: "plan-solo", Name: "Plano SOLO", Quantity: 1, Price: price("169.90")}},
			CollectionAddress: "456 Oak Ave", DeliveryAddress: "456 Oak Ave", CollectionTime: "PM Slot", DeliveryTime: "AM Slot",
		},
		{
			ID: "ord001", CustomerID: "cust1", CustomerName: "John Doe", Date: "2024-07-28",
			Total: price("59.90"), Status: models.StatusCompleted,
			Items: []models.OrderItem{
				{ServiceID: "serv-cesto", Name: "Cesto Base", Quantity: 1, Price: price("44.90")},
				{ServiceID: "extra-stain", Name: "Stain Removal", Quantity: 2, Price: price("7.50")},
			},
			CollectionAddress: "123 Main St", DeliveryAddress: "123 Main St", CollectionTime: "AM Slot", DeliveryTime: "PM Slot",
		},
	}

	s.settings = models.Settings{
		LaundryName: "Lavapp",
		Address:     "123 Laundry Lane, Clean City, 12345",
		Phone:       "555-0101",
		Email:       "contact@lavapp.com",
		OpeningTime: "09:00",
		ClosingTime: "18:00",
	}
}
