package models

// Settings is the business profile edited on the admin settings screen.
type Settings struct {
	LaundryName string `json:"laundryName"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}
