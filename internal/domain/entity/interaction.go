// Package entity contains the core business objects of the project.
package entity

import (
	domainerrors "social/internal/domain/errors"
	"social/internal/domain/kernel"
)

// InteractionType is the kind of reaction left on a post.
type InteractionType string

const (
	InteractionLike  InteractionType = "like"
	InteractionLove  InteractionType = "love"
	InteractionLaugh InteractionType = "laugh"
	InteractionWow   InteractionType = "wow"
	InteractionSad   InteractionType = "sad"
)

// String returns the string representation of the InteractionType.
func (t InteractionType) String() string {
	return string(t)
}

// IsValid checks if the InteractionType is a valid value.
func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionLike, InteractionLove, InteractionLaugh, InteractionWow, InteractionSad:
		return true
	default:
		return false
	}
}

// Interaction is a reaction by one user on a post.
type Interaction struct {
	authorID UserID
	kind     InteractionType
}

// NewInteraction validates the author and the interaction type.
func NewInteraction(authorID UserID, kind InteractionType) (Interaction, error) {
	if authorID.IsZero() {
		return Interaction{}, domainerrors.ErrEmptyAuthor.WithField("authorId")
	}
	if !kind.IsValid() {
		return Interaction{}, domainerrors.ErrInvalidInteraction.WithDetails(kind.String())
	}

	return Interaction{authorID: authorID, kind: kind}, nil
}

func (i Interaction) AuthorID() UserID      { return i.authorID }
func (i Interaction) Type() InteractionType { return i.kind }

// Fields implements kernel.ValueObject.
func (i Interaction) Fields() []kernel.Field {
	return []kernel.Field{kernel.UUID(i.authorID.UUID), kernel.String(string(i.kind))}
}

// Equals reports equality with another value object.
func (i Interaction) Equals(other kernel.ValueObject) bool {
	return kernel.Equal(i, other)
}
