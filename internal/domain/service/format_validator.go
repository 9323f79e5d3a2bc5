// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// FormatValidator checks the textual formats the user model depends on.
// Implementations must be pure predicates with no side effects.
type FormatValidator interface {
	// IsEmail reports whether s is a valid email address.
	IsEmail(s string) bool

	// IsURI reports whether s is an absolute URI.
	IsURI(s string) bool
}
