// Package repository defines the persistence contracts the domain depends on.
package repository

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/errors"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user. The password hash is set exactly once here
	// and is never re-derived afterwards.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its identifier.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByEmail retrieves a user by email, the sole authentication lookup key.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDForUpdate retrieves a user while holding a row lock for the
	// remainder of the surrounding transaction. Callers must run inside
	// TransactionManager.Execute; the lock serializes concurrent
	// read-modify-write cycles on the serialized address column.
	FindByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// UpdateAddresses replaces the user's whole serialized address list in a
	// single statement. Returns ErrUserNotFound when the id matches no row.
	UpdateAddresses(ctx context.Context, id uint64, addresses []entity.Address) error
}
