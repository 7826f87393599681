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

// ProductRepository implements product data operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	m := &models.Product{
		ID:           product.ID,
		RestaurantID: product.RestaurantID,
		Name:         product.Name,
		Description:  product.Description,
		PriceUSD:     product.PriceUSD,
		ImageURL:     product.ImageURL,
		DisplayOrder: product.DisplayOrder,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByRestaurant lists a restaurant's catalog in display order
func (r *ProductRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Product, error) {
	var productModels []models.Product
	if err := GetDB(ctx, r.db).Where("restaurant_id = ?", restaurantID).
		Order("display_order ASC, created_at ASC").Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, r.toEntity(&productModels[i]))
	}
	return products, nil
}

// Update updates a product's editable fields
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	result := GetDB(ctx, r.db).Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":        product.Name,
		"description": product.Description,
		"price_usd":   product.PriceUSD,
		"image_url":   product.ImageURL,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateDisplayOrder moves one product of the given restaurant. The
// restaurant filter keeps ids belonging to other tenants inert.
func (r *ProductRepository) UpdateDisplayOrder(ctx context.Context, restaurantID, productID uuid.UUID, order int) error {
	return GetDB(ctx, r.db).Model(&models.Product{}).
		Where("id = ? AND restaurant_id = ?", productID, restaurantID).
		Updates(map[string]interface{}{
			"display_order": order,
			"updated_at":    time.Now(),
		}).Error
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteByRestaurant removes all products of a restaurant
func (r *ProductRepository) DeleteByRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	return GetDB(ctx, r.db).Delete(&models.Product{}, "restaurant_id = ?", restaurantID).Error
}

func (r *ProductRepository) toEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		PriceUSD:     m.PriceUSD,
		ImageURL:     m.ImageURL,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
