package entities

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a paid (or trial) period for a restaurant. The active
// subscription is the most recent by end date among active rows.
type Subscription struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DaysLeft returns whole days until the subscription ends, negative once
// expired.
func (s *Subscription) DaysLeft(now time.Time) int {
	return int(s.EndDate.Sub(now).Hours() / 24)
}

// ActivateSubscriptionInput is the payload for activating a subscription.
type ActivateSubscriptionInput struct {
	RestaurantID uuid.UUID `json:"restaurant_id" binding:"required"`
	StartDate    time.Time `json:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate      time.Time `json:"end_date" binding:"required" time_format:"2006-01-02"`
}
