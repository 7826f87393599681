package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
)

// SaleRepository defines sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entities.Sale) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Sale, error)
	Totals(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) (*entities.SaleTotals, error)
	TotalsByDay(ctx context.Context, restaurantID uuid.UUID, from, to time.Time) ([]*entities.DailySales, error)
	GlobalTotals(ctx context.Context, from, to time.Time) (*entities.SaleTotals, error)
	TotalsByStore(ctx context.Context, from, to time.Time) ([]*entities.StoreSales, error)
	// DeleteByRestaurant removes the restaurant's sale line items first,
	// then its sales.
	DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error
	// DeleteByBuyer removes the sales where the user is the buyer, line
	// items first.
	DeleteByBuyer(ctx context.Context, userID uuid.UUID) error
}
