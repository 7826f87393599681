package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/infrastructure/models"
)

// DeliveryOptionRepository implements delivery option data operations
type DeliveryOptionRepository struct {
	db *gorm.DB
}

// NewDeliveryOptionRepository creates a new delivery option repository
func NewDeliveryOptionRepository(db *gorm.DB) *DeliveryOptionRepository {
	return &DeliveryOptionRepository{db: db}
}

// Create creates a new delivery option
func (r *DeliveryOptionRepository) Create(ctx context.Context, option *entities.DeliveryOption) error {
	if option.ID == uuid.Nil {
		option.ID = uuid.New()
	}
	m := &models.DeliveryOption{
		ID:           option.ID,
		RestaurantID: option.RestaurantID,
		Type:         option.Type,
		Price:        option.Price.Ptr(),
		IsActive:     option.IsActive,
		CreatedAt:    option.CreatedAt,
		UpdatedAt:    option.UpdatedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// GetByType gets a restaurant's option of the given type
func (r *DeliveryOptionRepository) GetByType(ctx context.Context, restaurantID uuid.UUID, optionType string) (*entities.DeliveryOption, error) {
	var m models.DeliveryOption
	if err := GetDB(ctx, r.db).Where("restaurant_id = ? AND type = ?", restaurantID, optionType).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByRestaurant lists a restaurant's delivery options
func (r *DeliveryOptionRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.DeliveryOption, error) {
	var optionModels []models.DeliveryOption
	if err := GetDB(ctx, r.db).Where("restaurant_id = ?", restaurantID).
		Order("type ASC").Find(&optionModels).Error; err != nil {
		return nil, err
	}

	options := make([]*entities.DeliveryOption, 0, len(optionModels))
	for i := range optionModels {
		options = append(options, r.toEntity(&optionModels[i]))
	}
	return options, nil
}

// Update overwrites an option's price and active flag
func (r *DeliveryOptionRepository) Update(ctx context.Context, option *entities.DeliveryOption) error {
	result := GetDB(ctx, r.db).Model(&models.DeliveryOption{}).Where("id = ?", option.ID).Updates(map[string]interface{}{
		"price":      option.Price.Ptr(),
		"is_active":  option.IsActive,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByRestaurant removes all delivery options of a restaurant
func (r *DeliveryOptionRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	return GetDB(ctx, r.db).Delete(&models.DeliveryOption{}, "restaurant_id = ?", restaurantID).Error
}

func (r *DeliveryOptionRepository) toEntity(m *models.DeliveryOption) *entities.DeliveryOption {
	return &entities.DeliveryOption{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Type:         m.Type,
		Price:        null.Float64FromPtr(m.Price),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
