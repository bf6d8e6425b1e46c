package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new account and fills its database-assigned id.
	// Returns a StateConflict error when the username is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByUsername retrieves an account by its login name. Returns an
	// ObjectNotFound error when no such account exists.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
