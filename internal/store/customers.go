package store

import "lavapp/internal/models"

// ListCustomers returns every known customer.
func (s *Store) ListCustomers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// GetCustomer looks a customer up by id.
func (s *Store) GetCustomer(id string) (models.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}
