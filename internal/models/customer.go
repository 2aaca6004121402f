package models

// Customer is a person the laundry has served at least once.
type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	JoinedDate string `json:"joinedDate"`
	Address    string `json:"address,omitempty"`
}
