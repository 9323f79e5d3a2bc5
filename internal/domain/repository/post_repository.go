package repository

import (
	"context"

	"social/internal/domain/entity"
	"social/internal/errors"
)

// Domain-specific errors for post storage.
var (
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrPostAlreadyExists is returned when creating a post whose id is taken.
	ErrPostAlreadyExists = errors.New("post already exists")
)

// PostRepository defines the operations for text post storage.
type PostRepository interface {
	// FindByID retrieves a post by its unique ID.
	FindByID(ctx context.Context, id entity.PostID) (*entity.TextPost, error)

	// FindByAuthor retrieves every post written by authorID, oldest first.
	FindByAuthor(ctx context.Context, authorID entity.UserID) ([]*entity.TextPost, error)

	// Create stores a new post aggregate.
	Create(ctx context.Context, post *entity.TextPost) error

	// Update replaces the stored state of an existing post aggregate.
	Update(ctx context.Context, post *entity.TextPost) error

	// Delete removes a post with its comments and interactions.
	Delete(ctx context.Context, id entity.PostID) error
}
