package errors

import (
	"fmt"

	"social/internal/errors"
)

// Kind identifies the reason a domain operation was refused.
type Kind string

const (
	KindInvalidIdentifier          Kind = "INVALID_IDENTIFIER"
	KindNullArgument               Kind = "NULL_ARGUMENT"
	KindEmptyArgument              Kind = "EMPTY_ARGUMENT"
	KindTooShort                   Kind = "TOO_SHORT"
	KindContainsDigit              Kind = "CONTAINS_DIGIT"
	KindInvalidCharacter           Kind = "INVALID_CHARACTER"
	KindInvalidURI                 Kind = "INVALID_URI"
	KindInvalidEmail               Kind = "INVALID_EMAIL"
	KindInvalidCoordinates         Kind = "INVALID_COORDINATES"
	KindInvalidInteractionType     Kind = "INVALID_INTERACTION_TYPE"
	KindDuplicateInteraction       Kind = "DUPLICATE_INTERACTION"
	KindEmptyID                    Kind = "EMPTY_ID"
	KindEmptyAuthor                Kind = "EMPTY_AUTHOR"
	KindEmptyMessage               Kind = "EMPTY_MESSAGE"
	KindEmptyTitle                 Kind = "EMPTY_TITLE"
	KindModifiedBeforeCreated      Kind = "MODIFIED_BEFORE_CREATED"
	KindNotFound                   Kind = "NOT_FOUND"
	KindNotPending                 Kind = "NOT_PENDING"
	KindSelfRequest                Kind = "SELF_REQUEST"
	KindAlreadyFriends             Kind = "ALREADY_FRIENDS"
	KindConnectionRequestsDisabled Kind = "CONNECTION_REQUESTS_DISABLED"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// DomainError defines the interface for errors raised by the domain model
type DomainError interface {
	error
	Kind() Kind      // Reason code
	Field() string   // Offending field, empty when not field specific
	Message() string // Human readable message
	Details() string // Extra context (optional)
}

// BaseError is a basic error structure that implements the DomainError interface
type BaseError struct {
	kind    Kind
	field   string
	message string
	details string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, message string) *BaseError {
	return &BaseError{
		kind:    kind,
		message: message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	msg := e.message
	if e.field != "" {
		msg = e.field + ": " + msg
	}
	if e.details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.details)
	}

	return msg
}

// Is matches any BaseError of the same kind, so callers can compare against
// the predefined values even after WithField/WithDetails copies.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.kind == e.kind
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the reason code
func (e *BaseError) Kind() Kind {
	return e.kind
}

// Field returns the offending field
func (e *BaseError) Field() string {
	return e.field
}

// Message returns the human readable message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithField returns a copy of the error bound to a field
func (e *BaseError) WithField(field string) *BaseError {
	cp := *e
	cp.field = field

	return &cp
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

// KindOf returns the Kind of the first DomainError in err's tree.
func KindOf(err error) (Kind, bool) {
	var de DomainError
	if !errors.As(err, &de) {
		return "", false
	}

	return de.Kind(), true
}

// Predefined error types
var (
	// Identity errors
	ErrInvalidIdentifier = NewBaseError(KindInvalidIdentifier, "the ID cannot be the type's default value")

	// Argument validation errors
	ErrNullArgument     = NewBaseError(KindNullArgument, "value cannot be null")
	ErrEmptyArgument    = NewBaseError(KindEmptyArgument, "value cannot be empty")
	ErrTooShort         = NewBaseError(KindTooShort, "value must be at least two characters long")
	ErrContainsDigit    = NewBaseError(KindContainsDigit, "value cannot contain digits")
	ErrInvalidCharacter = NewBaseError(KindInvalidCharacter, "value can contain only letters")

	// Format errors
	ErrInvalidURI           = NewBaseError(KindInvalidURI, "the provided photo URL is not a URI format")
	ErrInvalidEmail         = NewBaseError(KindInvalidEmail, "the provided email string is not a valid email format")
	ErrInvalidCoordinates   = NewBaseError(KindInvalidCoordinates, "coordinates are out of range")
	ErrInvalidInteraction   = NewBaseError(KindInvalidInteractionType, "unknown interaction type")
	ErrDuplicateInteraction = NewBaseError(KindDuplicateInteraction, "author already interacted with the post")

	// Comment and post errors
	ErrEmptyID               = NewBaseError(KindEmptyID, "id can't be an empty GUID")
	ErrEmptyAuthor           = NewBaseError(KindEmptyAuthor, "author can't be an empty GUID")
	ErrEmptyMessage          = NewBaseError(KindEmptyMessage, "message can't be empty")
	ErrEmptyTitle            = NewBaseError(KindEmptyTitle, "title can't be empty")
	ErrModifiedBeforeCreated = NewBaseError(KindModifiedBeforeCreated, "last modified date can't be earlier than the creation date")

	// Lookup errors
	ErrNotFound   = NewBaseError(KindNotFound, "item not found")
	ErrNotPending = NewBaseError(KindNotPending, "no pending friend request from user")

	// Friend request errors
	ErrSelfRequest                = NewBaseError(KindSelfRequest, "a user cannot befriend themselves")
	ErrAlreadyFriends             = NewBaseError(KindAlreadyFriends, "users are already friends")
	ErrConnectionRequestsDisabled = NewBaseError(KindConnectionRequestsDisabled, "user does not accept connection requests")
)
