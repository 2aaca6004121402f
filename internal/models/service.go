package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCategory groups catalog entries the way the admin screen lists them.
type ServiceCategory string

const (
	CategoryPlan        ServiceCategory = "plan"
	CategoryExtra       ServiceCategory = "extra"
	CategoryBase        ServiceCategory = "base"
	CategorySpecialCare ServiceCategory = "special_care"
	CategoryPackaging   ServiceCategory = "packaging"
)

// Channel says in which purchase mode a service can be picked: subscription
// plans, one-off orders, or both.
type Channel string

const (
	ChannelPlan   Channel = "plan"
	ChannelOneOff Channel = "one_off"
	ChannelBoth   Channel = "both"
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelPlan, ChannelOneOff, ChannelBoth:
		return true
	}
	return false
}

// Matches reports whether a service sold on channel c is visible when the
// customer is shopping on channel want.
func (c Channel) Matches(want Channel) bool {
	return c == ChannelBoth || c == want
}

func (sc ServiceCategory) Valid() bool {
	switch sc {
	case CategoryPlan, CategoryExtra, CategoryBase, CategorySpecialCare, CategoryPackaging:
		return true
	}
	return false
}

// Service is one purchasable catalog entry. Loaded services are immutable;
// the store hands out copies.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    ServiceCategory `json:"category"`
	Channel     Channel         `json:"channel"`
	CreatedAt   time.Time       `json:"createdAt"`
}
