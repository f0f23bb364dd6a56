package accountrepo

import (
	"context"
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user and returns the entity carrying the store-assigned
// identifier. A taken email fails before the insert is attempted; the
// unique index backs the check against races.
func (r *GormAccountRepository) Add(ctx context.Context, user *account.User) (*account.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("email = ?", user.Email()).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errs.NewValueIsInvalidError("email is already registered")
	}

	dto := fromDomain(user)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	persisted, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Get retrieves a user by id.
func (r *GormAccountRepository) Get(ctx context.Context, id int64) (*account.User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by its unique email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
