package entities

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is a tenant: one store owned by one user.
type Restaurant struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CustomURL   string    `json:"custom_url"`
	Whatsapp    string    `json:"whatsapp"`
	LogoURL     string    `json:"logo_url"`
	BannerURL   string    `json:"banner_url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateRestaurantInput is the payload for registering a store.
type CreateRestaurantInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CustomURL   string `json:"custom_url" binding:"required"`
	Whatsapp    string `json:"whatsapp"`
	LogoURL     string `json:"logo_url"`
	BannerURL   string `json:"banner_url"`
}

// RestaurantConfigInput carries the optional store-config fields for a
// partial update.
type RestaurantConfigInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Whatsapp    *string `json:"whatsapp"`
	LogoURL     *string `json:"logo_url"`
	BannerURL   *string `json:"banner_url"`
	CustomURL   *string `json:"custom_url"`
}

// RestaurantConfig is the full storefront configuration for the owner
// dashboard.
type RestaurantConfig struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Whatsapp        string            `json:"whatsapp"`
	LogoURL         string            `json:"logo_url"`
	BannerURL       string            `json:"banner_url"`
	CustomURL       string            `json:"custom_url"`
	PaymentMethods  []*PaymentMethod  `json:"paymentMethods"`
	DeliveryOptions []*DeliveryOption `json:"deliveryOptions"`
	OpeningHours    []*OpeningHour    `json:"openingHours"`
	Subscription    *Subscription     `json:"subscription"`
}

// Storefront is the public view of a restaurant.
type Storefront struct {
	Restaurant
	Products     []*Product     `json:"products"`
	Subscription *Subscription  `json:"subscription"`
	OpeningHours []*OpeningHour `json:"openingHours"`
}
