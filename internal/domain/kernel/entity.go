// Package kernel holds the building blocks that give every domain object its
// notion of sameness: identity equality for entities and structural equality
// for value objects.
package kernel

import (
	"hash/maphash"

	domainerrors "social/internal/domain/errors"
)

// Entity gives an object identity equality based solely on its identifier.
// It is meant to be embedded by concrete entity types.
type Entity[ID comparable] struct {
	id ID
}

// NewEntity returns an Entity for id, refusing the identifier type's zero value.
func NewEntity[ID comparable](id ID) (Entity[ID], error) {
	var zero ID
	if id == zero {
		return Entity[ID]{}, domainerrors.ErrInvalidIdentifier.WithField("id")
	}

	return Entity[ID]{id: id}, nil
}

// ID returns the entity identifier.
func (e Entity[ID]) ID() ID {
	return e.id
}

// Equals reports whether both entities carry the same identifier.
// Only the identifier is compared; entity kinds are kept apart by giving
// each kind its own identifier type.
func (e Entity[ID]) Equals(other Entity[ID]) bool {
	return e.id == other.id
}

// Hash returns the identifier's own hash.
func (e Entity[ID]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, e.id)
}
