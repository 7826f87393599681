package entities

import (
	"time"

	"github.com/google/uuid"
)

// OpeningHour is one weekday schedule row. After reconciliation the steady
// state is one row per (restaurant, day).
type OpeningHour struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	DayOfWeek    string    `json:"day_of_week"`
	OpenTime     string    `json:"open_time"`
	CloseTime    string    `json:"close_time"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OpeningHourItem is one desired schedule row from the client. DayOfWeek
// is loosely typed: 1-7, numeric strings and day names are accepted.
type OpeningHourItem struct {
	DayOfWeek interface{} `json:"day_of_week"`
	OpenTime  string      `json:"open_time"`
	CloseTime string      `json:"close_time"`
}

// ReconcileOpeningHoursInput is the full desired schedule.
type ReconcileOpeningHoursInput struct {
	Horarios []OpeningHourItem `json:"horarios" binding:"required"`
}
