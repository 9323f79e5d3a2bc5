package entity

import "github.com/google/uuid"

// Each entity kind has its own identifier type so identifiers of different
// kinds can never be compared with each other.

// UserID identifies a User.
type UserID struct{ uuid.UUID }

// PostID identifies a post.
type PostID struct{ uuid.UUID }

// CommentID identifies a Comment within its post.
type CommentID struct{ uuid.UUID }

// NewUserID generates a random UserID.
func NewUserID() UserID { return UserID{uuid.New()} }

// NewPostID generates a random PostID.
func NewPostID() PostID { return PostID{uuid.New()} }

// NewCommentID generates a random CommentID.
func NewCommentID() CommentID { return CommentID{uuid.New()} }

// ParseUserID parses the textual form of a UserID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}

	return UserID{id}, nil
}

// ParsePostID parses the textual form of a PostID.
func ParsePostID(s string) (PostID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PostID{}, err
	}

	return PostID{id}, nil
}

// ParseCommentID parses the textual form of a CommentID.
func ParseCommentID(s string) (CommentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CommentID{}, err
	}

	return CommentID{id}, nil
}

// IsZero reports whether the identifier is unset.
func (id UserID) IsZero() bool    { return id.UUID == uuid.Nil }
func (id PostID) IsZero() bool    { return id.UUID == uuid.Nil }
func (id CommentID) IsZero() bool { return id.UUID == uuid.Nil }
