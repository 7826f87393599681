package entities

import (
	"time"

	"github.com/google/uuid"
)

// Product is one catalog item of a restaurant. DisplayOrder is a rank
// maintained by the reorder operation, unique by convention only.
type Product struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceUSD     float64   `json:"price_usd"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateProductInput is the payload for adding a product.
type CreateProductInput struct {
	RestaurantID uuid.UUID   `json:"restaurant_id" binding:"required"`
	Name         string      `json:"name" binding:"required"`
	Description  string      `json:"description"`
	PriceUSD     interface{} `json:"price_usd"`
	ImageURL     string      `json:"image_url"`
}

// UpdateProductInput is the payload for editing a product.
type UpdateProductInput struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	PriceUSD    interface{} `json:"price_usd"`
	ImageURL    string      `json:"image_url"`
}

// ReorderItem pairs a product id with its desired display order. Items
// missing either field are skipped.
type ReorderItem struct {
	ID    *uuid.UUID `json:"id"`
	Order *int       `json:"order"`
}

// ReorderInput is the payload for the product reorder operation.
type ReorderInput struct {
	Items []ReorderItem `json:"items" binding:"required"`
}
