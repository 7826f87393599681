package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/infrastructure/models"
)

// RestaurantRepository implements restaurant data operations
type RestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// Create creates a new restaurant
func (r *RestaurantRepository) Create(ctx context.Context, restaurant *entities.Restaurant) error {
	if restaurant.ID == uuid.Nil {
		restaurant.ID = uuid.New()
	}
	m := &models.Restaurant{
		ID:          restaurant.ID,
		OwnerID:     restaurant.OwnerID,
		Name:        restaurant.Name,
		Description: restaurant.Description,
		CustomURL:   restaurant.CustomURL,
		Whatsapp:    restaurant.Whatsapp,
		LogoURL:     restaurant.LogoURL,
		BannerURL:   restaurant.BannerURL,
		CreatedAt:   restaurant.CreatedAt,
		UpdatedAt:   restaurant.UpdatedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// GetByID gets a restaurant by ID
func (r *RestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Restaurant, error) {
	var m models.Restaurant
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByOwnerID gets the restaurant owned by a user
func (r *RestaurantRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entities.Restaurant, error) {
	var m models.Restaurant
	if err := GetDB(ctx, r.db).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByCustomURL gets a restaurant by its public slug
func (r *RestaurantRepository) GetByCustomURL(ctx context.Context, customURL string) (*entities.Restaurant, error) {
	var m models.Restaurant
	if err := GetDB(ctx, r.db).Where("custom_url = ?", customURL).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List lists all restaurants, newest first
func (r *RestaurantRepository) List(ctx context.Context) ([]*entities.Restaurant, error) {
	var restaurantModels []models.Restaurant
	if err := GetDB(ctx, r.db).Order("created_at DESC").Find(&restaurantModels).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*entities.Restaurant, 0, len(restaurantModels))
	for i := range restaurantModels {
		restaurants = append(restaurants, r.toEntity(&restaurantModels[i]))
	}
	return restaurants, nil
}

// CustomURLTaken reports whether another restaurant already claims the url
func (r *RestaurantRepository) CustomURLTaken(ctx context.Context, customURL string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := GetDB(ctx, r.db).Model(&models.Restaurant{}).Where("custom_url = ?", customURL)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateConfig applies the provided config fields only
func (r *RestaurantRepository) UpdateConfig(ctx context.Context, id uuid.UUID, input *entities.RestaurantConfigInput) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Whatsapp != nil {
		updates["whatsapp"] = *input.Whatsapp
	}
	if input.LogoURL != nil {
		updates["logo_url"] = *input.LogoURL
	}
	if input.BannerURL != nil {
		updates["banner_url"] = *input.BannerURL
	}
	if input.CustomURL != nil {
		updates["custom_url"] = *input.CustomURL
	}

	result := GetDB(ctx, r.db).Model(&models.Restaurant{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a restaurant
func (r *RestaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Restaurant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *RestaurantRepository) toEntity(m *models.Restaurant) *entities.Restaurant {
	return &entities.Restaurant{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		CustomURL:   m.CustomURL,
		Whatsapp:    m.Whatsapp,
		LogoURL:     m.LogoURL,
		BannerURL:   m.BannerURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
