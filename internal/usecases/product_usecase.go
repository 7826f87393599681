package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
	"fudys.backend/internal/domain/repositories"
	"fudys.backend/pkg/normalize"
)

const collectionProducts = "products"

// ProductUsecase handles catalog management
type ProductUsecase struct {
	productRepo    repositories.ProductRepository
	restaurantRepo repositories.RestaurantRepository
	reconciler     *Reconciler
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository, restaurantRepo repositories.RestaurantRepository, reconciler *Reconciler) *ProductUsecase {
	return &ProductUsecase{
		productRepo:    productRepo,
		restaurantRepo: restaurantRepo,
		reconciler:     reconciler,
	}
}

// ListByRestaurant returns a store's catalog in display order
func (u *ProductUsecase) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entities.Product, error) {
	return u.productRepo.ListByRestaurant(ctx, restaurantID)
}

// Create adds a product to the actor's store, appended at the end of the
// display order.
func (u *ProductUsecase) Create(ctx context.Context, actor Actor, input *entities.CreateProductInput) (*entities.Product, error) {
	restaurant, err := u.restaurantRepo.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, restaurant); err != nil {
		return nil, err
	}

	existing, err := u.productRepo.ListByRestaurant(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entities.Product{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Description:  input.Description,
		PriceUSD:     normalize.Price(input.PriceUSD),
		ImageURL:     input.ImageURL,
		DisplayOrder: len(existing),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update edits a product of the actor's store
func (u *ProductUsecase) Update(ctx context.Context, actor Actor, productID uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error) {
	product, err := u.authorizedProduct(ctx, actor, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.PriceUSD = normalize.Price(input.PriceUSD)
	product.ImageURL = input.ImageURL
	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product of the actor's store
func (u *ProductUsecase) Delete(ctx context.Context, actor Actor, productID uuid.UUID) error {
	if _, err := u.authorizedProduct(ctx, actor, productID); err != nil {
		return err
	}
	return u.productRepo.Delete(ctx, productID)
}

// Reorder applies the submitted display ranks to the store's catalog.
// Items lacking an id or order are skipped, and ids from other stores
// move nothing; the returned list is the catalog in its new order.
func (u *ProductUsecase) Reorder(ctx context.Context, actor Actor, restaurantID uuid.UUID, input *entities.ReorderInput) ([]*entities.Product, error) {
	err := u.reconciler.Run(ctx, actor, restaurantID, collectionProducts, func(ctx context.Context) error {
		for _, item := range input.Items {
			if item.ID == nil || item.Order == nil {
				continue
			}
			if err := u.productRepo.UpdateDisplayOrder(ctx, restaurantID, *item.ID, *item.Order); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u.productRepo.ListByRestaurant(ctx, restaurantID)
}

func (u *ProductUsecase) authorizedProduct(ctx context.Context, actor Actor, productID uuid.UUID) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	restaurant, err := u.restaurantRepo.GetByID(ctx, product.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, restaurant); err != nil {
		return nil, err
	}
	return product, nil
}
