package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Sale is one recorded order of a restaurant. UserID is the buyer and may
// be absent for anonymous orders.
type Sale struct {
	ID            uuid.UUID   `json:"id"`
	RestaurantID  uuid.UUID   `json:"restaurantId"`
	UserID        null.String `json:"userId,omitempty"`
	TotalUSD      float64     `json:"total_usd"`
	TotalVES      float64     `json:"total_ves"`
	CommissionUSD float64     `json:"commission_usd"`
	Items         []*SaleItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// SaleItem is one line of a sale.
type SaleItem struct {
	ID        uuid.UUID   `json:"id"`
	SaleID    uuid.UUID   `json:"saleId"`
	ProductID null.String `json:"productId,omitempty"`
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	PriceUSD  float64     `json:"price_usd"`
}

// RecordSaleInput is the payload for recording a sale.
type RecordSaleInput struct {
	RestaurantID  uuid.UUID       `json:"restaurant_id" binding:"required"`
	UserID        string          `json:"user_id"`
	TotalUSD      float64         `json:"total_usd"`
	TotalVES      float64         `json:"total_ves"`
	CommissionUSD float64         `json:"commission_usd"`
	Items         []SaleItemInput `json:"items"`
}

// SaleItemInput is one line of a recorded sale.
type SaleItemInput struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	PriceUSD  float64 `json:"price_usd"`
}

// DailySales is one day of aggregated sales.
type DailySales struct {
	Date      string  `json:"date"`
	Orders    int     `json:"orders"`
	AmountUSD float64 `json:"amount_usd"`
	AmountVES float64 `json:"amount_ves"`
}

// SaleTotals aggregates sales over a period.
type SaleTotals struct {
	TotalSalesUSD float64 `json:"total_sales_usd"`
	TotalSalesVES float64 `json:"total_sales_ves"`
	TotalOrders   int     `json:"total_orders"`
}

// RestaurantStats is the per-store sales report.
type RestaurantStats struct {
	SaleTotals
	SalesByDay   []*DailySales     `json:"sales_by_day"`
	Subscription *SubscriptionInfo `json:"subscription"`
}

// SubscriptionInfo summarizes the active subscription inside a stats
// report.
type SubscriptionInfo struct {
	IsActive  bool      `json:"is_active"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	DaysLeft  int       `json:"days_left"`
}

// StoreSales is one store's aggregate in the global report.
type StoreSales struct {
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	TotalUSD       float64   `json:"total_usd"`
	TotalVES       float64   `json:"total_ves"`
	Orders         int       `json:"orders"`
}

// GlobalStats is the platform-wide sales report.
type GlobalStats struct {
	SaleTotals
	SalesByStore []*StoreSales `json:"sales_by_store"`
}
