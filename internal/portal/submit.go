package portal

import (
	"fmt"
	"strings"
	"time"

	"lavapp/internal/models"
	"lavapp/internal/store"
)

// shiftLabels maps the pickup-shift answer to the label shown on the order.
var shiftLabels = map[string]string{
	"manha": "Manhã (8h-12h)",
	"tarde": "Tarde (13h-17h)",
	"noite": "Noite (18h-22h)",
}

// CreateFunc is the persistence call Submit hands the assembled order to.
type CreateFunc func(store.OrderInput) (models.Order, error)

// Validate checks everything submission needs: a non-empty cart and every
// mandatory contact/address/schedule answer. The first problem is returned
// and nothing is mutated.
func (s *Session) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validate()
}

func (s *Session) validate() error {
	if s.cart.Empty() {
		return ErrEmptyCart
	}
	if field, missing := s.form.firstMissing(); missing {
		return FieldError{Field: field}
	}
	if _, err := time.Parse("2006-01-02", s.form.get(FieldPickupDate)); err != nil {
		return FieldError{Field: FieldPickupDate}
	}
	if _, ok := shiftLabels[s.form.get(FieldPickupShift)]; !ok {
		return FieldError{Field: FieldPickupShift}
	}
	return nil
}

// Submit validates, freezes the cart into order items, assembles the
// display address and collection label, and hands everything to create. On
// any failure the cart and form survive untouched so the customer can
// correct and resubmit; on success the session moves to the confirmation
// state and keeps the created order.
func (s *Session) Submit(create CreateFunc) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.placed {
		return models.Order{}, ErrAlreadyPlaced
	}
	if err := s.validate(); err != nil {
		return models.Order{}, err
	}

	lines := s.cart.Lines()
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ServiceID: line.ServiceID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	order, err := create(store.OrderInput{
		CustomerName:   s.form.get(FieldName),
		Address:        s.displayAddress(),
		Phone:          s.form.get(FieldPhone),
		Items:          items,
		Total:          s.cart.Total(),
		CollectionTime: s.collectionLabel(),
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("order could not be created: %w", err)
	}

	s.placed = true
	s.placedOrder = order
	s.step = StepSubmit
	return order, nil
}

// displayAddress concatenates the address parts into the single string
// stored on the order: "street, number[, complement] - neighborhood, city -
// CEP: code".
func (s *Session) displayAddress() string {
	var b strings.Builder
	b.WriteString(s.form.get(FieldStreet))
	b.WriteString(", ")
	b.WriteString(s.form.get(FieldNumber))
	if complement := strings.TrimSpace(s.form.get(FieldComplement)); complement != "" {
		b.WriteString(", ")
		b.WriteString(complement)
	}
	b.WriteString(" - ")
	b.WriteString(s.form.get(FieldNeighborhood))
	b.WriteString(", ")
	b.WriteString(s.form.get(FieldCity))
	b.WriteString(" - CEP: ")
	b.WriteString(s.form.get(FieldCEP))
	return b.String()
}

// collectionLabel renders the pickup date and shift as the human-readable
// collection time, e.g. "28/08/2026 - Manhã (8h-12h)".
func (s *Session) collectionLabel() string {
	date, _ := time.Parse("2006-01-02", s.form.get(FieldPickupDate))
	return fmt.Sprintf("%s - %s", date.Format("02/01/2006"), shiftLabels[s.form.get(FieldPickupShift)])
}
