package usecases

import (
	"context"

	"github.com/google/uuid"
	"fudys.backend/internal/domain/entities"
	domainerrors "fudys.backend/internal/domain/errors"
	"fudys.backend/internal/domain/repositories"
	"fudys.backend/pkg/keylock"
)

// Actor is the authenticated caller as seen by the usecases.
type Actor struct {
	ID   uuid.UUID
	Role entities.Role
}

// Reconciler guards the storefront sub-collection writes. Every write runs
// with the ownership check done, the (restaurant, collection) key locked
// and a transaction open, so two concurrent syncs of the same collection
// serialize instead of interleaving.
type Reconciler struct {
	restaurantRepo repositories.RestaurantRepository
	locks          *keylock.KeyedMutex
	uow            repositories.UnitOfWork
}

// NewReconciler creates a new reconciler.
func NewReconciler(restaurantRepo repositories.RestaurantRepository, uow repositories.UnitOfWork) *Reconciler {
	return &Reconciler{
		restaurantRepo: restaurantRepo,
		locks:          keylock.New(),
		uow:            uow,
	}
}

// Run executes fn for one restaurant sub-collection. The restaurant must
// exist and the actor must own it (super_admin bypasses ownership). fn
// receives a transactional context; returning an error rolls back every
// row it touched.
func (r *Reconciler) Run(ctx context.Context, actor Actor, restaurantID uuid.UUID, collection string, fn func(ctx context.Context) error) error {
	restaurant, err := r.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actor, restaurant); err != nil {
		return err
	}

	unlock := r.locks.Lock(restaurantID.String() + ":" + collection)
	defer unlock()

	return r.uow.Do(ctx, fn)
}

// authorizeOwner admits the restaurant's owner and super admins.
func authorizeOwner(actor Actor, restaurant *entities.Restaurant) error {
	if actor.Role == entities.RoleSuperAdmin {
		return nil
	}
	if restaurant.OwnerID == actor.ID {
		return nil
	}
	return domainerrors.ErrForbidden
}
