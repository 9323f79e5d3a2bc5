// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"social/internal/domain/entity"
)

// --- Input DTOs ---

// LocationInput describes where a user lives. Lat and Long are optional but
// must be given together.
type LocationInput struct {
	City    string
	Region  string
	Country string
	Lat     *float64
	Long    *float64
}

// RegisterUserInput defines the data required to register a new user.
// Names are pointers so that a missing value is told apart from an empty one.
type RegisterUserInput struct {
	FirstName *string
	LastName  *string
	Email     string
	PhotoURL  string
	About     string
	Location  *LocationInput
	Interests []string
	// Settings defaults to every permission granted when nil.
	Settings *entity.UserSettings
}

// FriendRequestInput names the two sides of a friend request.
type FriendRequestInput struct {
	FromUserID entity.UserID
	ToUserID   entity.UserID
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// RegisterUser validates the profile and stores a new user.
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)

	// GetUser loads a user by id.
	GetUser(ctx context.Context, userID entity.UserID) (*entity.User, error)

	// SendFriendRequest records a pending request on the recipient.
	SendFriendRequest(ctx context.Context, input FriendRequestInput) error

	// AcceptFriendRequest is called by the recipient and adds the sender to
	// the recipient's friends.
	AcceptFriendRequest(ctx context.Context, input FriendRequestInput) error

	// RejectFriendRequest is called by the recipient and drops the request.
	RejectFriendRequest(ctx context.Context, input FriendRequestInput) error

	// UpdateSettings replaces the user's account settings.
	UpdateSettings(ctx context.Context, userID entity.UserID, settings entity.UserSettings) error

	// AddInterest adds an interest to the user's profile. A blank interest
	// leaves the profile unchanged.
	AddInterest(ctx context.Context, userID entity.UserID, interest string) (*entity.User, error)
}
