package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"fudys.backend/internal/domain/entities"
	"fudys.backend/internal/infrastructure/models"
)

// PaymentMethodRepository implements payment method data operations
type PaymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository creates a new payment method repository
func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

// Create creates a new payment method
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entities.PaymentMethod) error {
	if method.ID == uuid.Nil {
		method.ID = uuid.New()
	}
	m := &models.PaymentMethod{
		ID:           method.ID,
		RestaurantID: method.RestaurantID,
		Type:         string(method.Type),
		Cedula:       method.Cedula.Ptr(),
		Phone:        method.Phone.Ptr(),
		Bank:         method.Bank.Ptr(),
		IsActive:     method.IsActive,
		CreatedAt:    method.CreatedAt,
		UpdatedAt:    method.UpdatedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// ListByRestaurant lists a restaurant's payment methods
func (r *PaymentMethodRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.PaymentMethod, error) {
	var methodModels []models.PaymentMethod
	if err := GetDB(ctx, r.db).Where("restaurant_id = ?", restaurantID).
		Order("created_at ASC").Find(&methodModels).Error; err != nil {
		return nil, err
	}

	methods := make([]*entities.PaymentMethod, 0, len(methodModels))
	for i := range methodModels {
		methods = append(methods, r.toEntity(&methodModels[i]))
	}
	return methods, nil
}

// DeleteByRestaurant removes all payment methods of a restaurant
func (r *PaymentMethodRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	return GetDB(ctx, r.db).Delete(&models.PaymentMethod{}, "restaurant_id = ?", restaurantID).Error
}

func (r *PaymentMethodRepository) toEntity(m *models.PaymentMethod) *entities.PaymentMethod {
	return &entities.PaymentMethod{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Type:         entities.PaymentMethodType(m.Type),
		Cedula:       null.StringFromPtr(m.Cedula),
		Phone:        null.StringFromPtr(m.Phone),
		Bank:         null.StringFromPtr(m.Bank),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
