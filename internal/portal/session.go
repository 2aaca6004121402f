// Package portal drives the customer-facing ordering wizard: channel
// selection, cart accumulation, address lookup and submission.
package portal

import (
	"errors"
	"fmt"
	"sync"

	"lavapp/internal/cart"
	"lavapp/internal/cep"
	"lavapp/internal/models"
)

// Wizard steps.
const (
	StepWelcome = 1
	StepBuild   = 2
	StepReview  = 3
	StepSubmit  = 4
)

var (
	// ErrEmptyCart blocks navigation to review/submit and submission
	// itself while no item is selected.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrConfirmationRequired is returned when switching channel would
	// discard a non-empty cart and the customer has not confirmed.
	ErrConfirmationRequired = errors.New("switching channels clears the current order; confirmation required")
	// ErrAlreadyPlaced rejects mutations after the order went through;
	// the customer starts over with Reset.
	ErrAlreadyPlaced = errors.New("order already placed")
)

// FieldError names the required field that blocked submission.
type FieldError struct {
	Field Field
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %s is required", e.Field)
}

// Session is one customer's trip through the wizard. Handlers serialize
// access through the embedded mutex; business actions within a session are
// processed strictly in the order issued.
type Session struct {
	mu sync.Mutex

	step    int
	channel models.Channel
	cart    cart.Cart
	form    Form

	cepDigits string
	cepError  bool
	lookupSeq uint64

	placed      bool
	placedOrder models.Order
}

// NewSession starts a wizard at the welcome step.
func NewSession() *Session {
	return &Session{step: StepWelcome, form: newForm()}
}

// Step reports the current wizard step.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Channel reports the selected purchase mode, empty until chosen.
func (s *Session) Channel() models.Channel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channel
}

// GoToStep navigates. Review and submit require at least one cart line.
func (s *Session) GoToStep(step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goToStep(step)
}

func (s *Session) goToStep(step int) error {
	if step < StepWelcome || step > StepSubmit {
		return fmt.Errorf("unknown step %d", step)
	}
	if (step == StepReview || step == StepSubmit) && s.cart.Empty() {
		return ErrEmptyCart
	}
	s.step = step
	return nil
}

// SelectChannel picks the purchase mode on the welcome step and moves to
// the build step.
func (s *Session) SelectChannel(ch models.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch != models.ChannelPlan && ch != models.ChannelOneOff {
		return fmt.Errorf("unknown channel %q", ch)
	}
	s.channel = ch
	return s.goToStep(StepBuild)
}

// SwitchChannel changes the purchase mode mid-order. With a non-empty cart
// this destroys the current selection, so it demands explicit confirmation;
// declined switches leave everything untouched.
func (s *Session) SwitchChannel(ch models.Channel, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch != models.ChannelPlan && ch != models.ChannelOneOff {
		return fmt.Errorf("unknown channel %q", ch)
	}
	if !s.cart.Empty() && !confirmed {
		return ErrConfirmationRequired
	}
	s.cart.Clear()
	s.channel = ch
	return s.goToStep(StepBuild)
}

// AddItem puts a catalog pick in the cart.
func (s *Session) AddItem(item cart.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.placed {
		return ErrAlreadyPlaced
	}
	s.cart.Add(item)
	return nil
}

// UpdateQuantity sets a line's quantity; zero or below removes it.
func (s *Session) UpdateQuantity(name string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.placed {
		return ErrAlreadyPlaced
	}
	s.cart.UpdateQuantity(name, quantity)
	return nil
}

// RemoveLine drops a line unconditionally.
func (s *Session) RemoveLine(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.placed {
		return ErrAlreadyPlaced
	}
	s.cart.Remove(name)
	return nil
}

// Cart returns a snapshot of the current lines.
func (s *Session) Cart() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Total recomputes the cart total.
func (s *Session) Total() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total().StringFixed(2)
}

// SetField records a form answer. The CEP field is normalized and
// reformatted; phone numbers get display formatting. The returned flag is
// true when the CEP just became complete and a lookup should be issued.
func (s *Session) SetField(field Field, value string) (lookupNeeded bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.placed {
		return false, ErrAlreadyPlaced
	}

	switch field {
	case FieldCEP:
		digits := cep.Normalize(value)
		s.cepDigits = digits
		if err := s.form.set(FieldCEP, cep.Format(digits)); err != nil {
			return false, err
		}
		return cep.Complete(digits), nil
	case FieldPhone:
		return false, s.form.set(FieldPhone, FormatPhone(value))
	default:
		return false, s.form.set(field, value)
	}
}

// Field reads one form answer.
func (s *Session) Field(field Field) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.get(field)
}

// Form returns a copy of every answer.
func (s *Session) Form() map[Field]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Values()
}

// CEPError reports whether the last resolved lookup failed.
func (s *Session) CEPError() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cepError
}

// Placed reports whether the order went through, and returns it if so.
func (s *Session) Placed() (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placedOrder, s.placed
}

// Reset starts a fresh order: cart, form and confirmation state are all
// discarded. Only an explicit reset clears the cart after placement.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.form.clear()
	s.cepDigits = ""
	s.cepError = false
	s.placed = false
	s.placedOrder = models.Order{}
	s.channel = ""
	s.step = StepWelcome
}
