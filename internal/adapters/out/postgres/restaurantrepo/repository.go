package restaurantrepo

import (
	"context"
	"errors"

	"gelsin/internal/core/domain/model/catalog"
	"gelsin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant and returns the entity carrying the
// store-assigned identifier.
func (r *GormRestaurantRepository) Add(
	ctx context.Context, restaurant *catalog.Restaurant,
) (*catalog.Restaurant, error) {
	if err := restaurant.Validate(); err != nil {
		return nil, err
	}

	dto := restaurantFromDomain(restaurant)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	persisted, err := restaurantToDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Get retrieves a restaurant by id.
func (r *GormRestaurantRepository) Get(ctx context.Context, id int64) (*catalog.Restaurant, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id)
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// GetByOwner retrieves the restaurant owned by the given user.
func (r *GormRestaurantRepository) GetByOwner(
	ctx context.Context, ownerUserID int64,
) (*catalog.Restaurant, error) {
	if ownerUserID <= 0 {
		return nil, errs.NewValueIsRequiredError("ownerUserID")
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).First(&dto, "owner_user_id = ?", ownerUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", ownerUserID)
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// AddMenuItem saves a new menu item and returns the entity carrying the
// store-assigned identifier.
func (r *GormRestaurantRepository) AddMenuItem(
	ctx context.Context, item *catalog.MenuItem,
) (*catalog.MenuItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	dto := menuItemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	persisted, err := menuItemToDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// GetMenuItem retrieves a menu item by id regardless of its active flag.
func (r *GormRestaurantRepository) GetMenuItem(ctx context.Context, id int64) (*catalog.MenuItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id)
		}
		return nil, err
	}

	return menuItemToDomain(dto)
}
