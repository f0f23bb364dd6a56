// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the payment capability.
// These interfaces establish the dependency inversion boundary, so the core
// never imports an adapter.
package ports

import (
	"context"

	"gelsin/internal/core/domain/model/account"
)

// AccountRepository defines the persistence contract for user entities.
type AccountRepository interface {
	// Add persists a new user and returns the user as persisted, carrying
	// the generated identifier. Fails if the email is already taken.
	Add(ctx context.Context, user *account.User) (*account.User, error)

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id int64) (*account.User, error)

	// GetByEmail retrieves a user by its unique email.
	// Used by login to verify credentials.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
