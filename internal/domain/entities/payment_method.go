package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentMethodType is the closed set of accepted payment method types.
type PaymentMethodType string

const (
	PaymentPagoMovil PaymentMethodType = "pago_movil"
	PaymentEfectivo  PaymentMethodType = "efectivo"
)

// ValidPaymentMethodType reports whether t is an accepted type.
func ValidPaymentMethodType(t string) bool {
	switch PaymentMethodType(t) {
	case PaymentPagoMovil, PaymentEfectivo:
		return true
	}
	return false
}

// PaymentMethod is one way a restaurant accepts payment.
type PaymentMethod struct {
	ID           uuid.UUID         `json:"id"`
	RestaurantID uuid.UUID         `json:"restaurantId"`
	Type         PaymentMethodType `json:"type"`
	Cedula       null.String       `json:"cedula,omitempty"`
	Phone        null.String       `json:"phone,omitempty"`
	Bank         null.String       `json:"bank,omitempty"`
	IsActive     bool              `json:"is_active"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// PaymentMethodItem is one desired payment method from the client.
type PaymentMethodItem struct {
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
	Cedula   string `json:"cedula"`
	Phone    string `json:"phone"`
	Bank     string `json:"bank"`
}

// ReconcilePaymentMethodsInput is the full desired set of payment methods.
type ReconcilePaymentMethodsInput struct {
	Methods []PaymentMethodItem `json:"methods" binding:"required"`
}
