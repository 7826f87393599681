package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DeliveryTypeDelivery is the only type whose price is meaningful.
const DeliveryTypeDelivery = "delivery"

// DeliveryOption is one fulfillment option of a restaurant, keyed by
// (restaurant, type).
type DeliveryOption struct {
	ID           uuid.UUID    `json:"id"`
	RestaurantID uuid.UUID    `json:"restaurantId"`
	Type         string       `json:"type"`
	Price        null.Float64 `json:"price,omitempty"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// DeliveryOptionItem is one desired delivery option from the client. Price
// is loosely typed: numbers and locale-formatted strings are accepted.
type DeliveryOptionItem struct {
	Type     string      `json:"type"`
	IsActive bool        `json:"is_active"`
	Price    interface{} `json:"price"`
}

// ReconcileDeliveryOptionsInput is the desired delivery option set.
type ReconcileDeliveryOptionsInput struct {
	Options []DeliveryOptionItem `json:"options" binding:"required"`
}
