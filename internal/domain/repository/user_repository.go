// Package repository defines the interfaces for the storage of aggregate roots.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"social/internal/domain/entity"
	"social/internal/errors"
)

// Domain-specific errors for user storage.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when creating a user whose id or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user storage.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create stores a new user aggregate.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the stored state of an existing user aggregate.
	Update(ctx context.Context, user *entity.User) error
}
