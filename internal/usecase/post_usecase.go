package usecase

import (
	"context"

	"social/internal/domain/entity"
)

// CreatePostInput defines the data required to publish a text post.
type CreatePostInput struct {
	AuthorID entity.UserID
	Title    string
	Message  string
}

// CommentInput defines a comment written by AuthorID on PostID.
type CommentInput struct {
	PostID   entity.PostID
	AuthorID entity.UserID
	Message  string
}

// InteractionInput defines a reaction of AuthorID to PostID.
type InteractionInput struct {
	PostID   entity.PostID
	AuthorID entity.UserID
	Type     entity.InteractionType
}

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	// CreatePost publishes a new text post for an existing author.
	CreatePost(ctx context.Context, input CreatePostInput) (*entity.TextPost, error)

	// GetPost loads a post by id.
	GetPost(ctx context.Context, postID entity.PostID) (*entity.TextPost, error)

	// ListAuthorPosts returns the author's posts, oldest first.
	ListAuthorPosts(ctx context.Context, authorID entity.UserID) ([]*entity.TextPost, error)

	// EditPost replaces title and message; empty fields are left unchanged.
	EditPost(ctx context.Context, postID entity.PostID, title, message string) (*entity.TextPost, error)

	// DeletePost removes a post.
	DeletePost(ctx context.Context, postID entity.PostID) error

	// AddComment appends a comment and returns its id.
	AddComment(ctx context.Context, input CommentInput) (entity.CommentID, error)

	// EditComment changes the message of a comment.
	EditComment(ctx context.Context, postID entity.PostID, commentID entity.CommentID, message string) error

	// DeleteComment removes a comment from a post.
	DeleteComment(ctx context.Context, postID entity.PostID, commentID entity.CommentID) error

	// React sets the author's interaction on a post, replacing any earlier one.
	React(ctx context.Context, input InteractionInput) error

	// RemoveReaction drops the author's interaction on a post.
	RemoveReaction(ctx context.Context, postID entity.PostID, authorID entity.UserID) error
}
