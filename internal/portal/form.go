package portal

import (
	"fmt"
	"strings"
)

// Field is the closed set of order-form fields. Updates are keyed by this
// enumeration and validated at the boundary instead of accepting arbitrary
// field names.
type Field string

const (
	FieldName         Field = "customerName"
	FieldPhone        Field = "customerPhone"
	FieldCEP          Field = "customerCep"
	FieldStreet       Field = "customerStreet"
	FieldNumber       Field = "customerNumber"
	FieldComplement   Field = "customerComplement"
	FieldNeighborhood Field = "customerNeighborhood"
	FieldCity         Field = "customerCity"
	FieldPickupDate   Field = "pickupDate"
	FieldPickupShift  Field = "pickupShift"
	FieldNotes        Field = "customerNotes"
)

var allFields = []Field{
	FieldName, FieldPhone, FieldCEP, FieldStreet, FieldNumber,
	FieldComplement, FieldNeighborhood, FieldCity, FieldPickupDate,
	FieldPickupShift, FieldNotes,
}

// requiredFields block submission while blank, in the order they are
// reported to the customer.
var requiredFields = []Field{
	FieldName, FieldPhone, FieldCEP, FieldStreet, FieldNumber,
	FieldNeighborhood, FieldCity, FieldPickupDate, FieldPickupShift,
}

func (f Field) Valid() bool {
	for _, known := range allFields {
		if f == known {
			return true
		}
	}
	return false
}

// Form holds the contact, address and scheduling answers.
type Form struct {
	values map[Field]string
}

func newForm() Form {
	return Form{values: map[Field]string{}}
}

func (f *Form) get(field Field) string {
	return f.values[field]
}

func (f *Form) set(field Field, value string) error {
	if !field.Valid() {
		return fmt.Errorf("unknown form field %q", field)
	}
	f.values[field] = value
	return nil
}

func (f *Form) clear() {
	f.values = map[Field]string{}
}

// Values returns a copy of the current answers.
func (f *Form) Values() map[Field]string {
	out := make(map[Field]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// firstMissing returns the first required field that is blank, ok=false when
// everything is filled.
func (f *Form) firstMissing() (Field, bool) {
	for _, field := range requiredFields {
		if strings.TrimSpace(f.values[field]) == "" {
			return field, true
		}
	}
	return "", false
}

// FormatPhone renders raw digits as a Brazilian mobile/landline number,
// progressively as the customer types: (11) 99999-9999.
func FormatPhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	switch {
	case len(digits) > 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	case len(digits) > 6:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	case len(digits) > 2:
		return fmt.Sprintf("(%s) %s", digits[:2], digits[2:])
	default:
		return digits
	}
}
