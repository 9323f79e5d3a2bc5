package kernel

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "social/internal/domain/errors"

	"golang.org/x/text/cases"
)

const minNameLength = 2

const (
	fieldFirstName = "firstName"
	fieldLastName  = "lastName"
)

// Name is a person's first and last name. Initials are derived and
// recomputed whenever a component changes.
type Name struct {
	firstName string
	lastName  string
	initials  string
}

// NewName validates both components, first name before last name.
func NewName(firstName, lastName string) (Name, error) {
	if err := validateNameComponent(firstName, fieldFirstName); err != nil {
		return Name{}, err
	}
	if err := validateNameComponent(lastName, fieldLastName); err != nil {
		return Name{}, err
	}

	return newName(firstName, lastName), nil
}

// NewNameFromPointers is NewName for optional inputs; a nil component is
// reported as a null argument.
func NewNameFromPointers(firstName, lastName *string) (Name, error) {
	if firstName == nil {
		return Name{}, domainerrors.ErrNullArgument.WithField(fieldFirstName)
	}
	if err := validateNameComponent(*firstName, fieldFirstName); err != nil {
		return Name{}, err
	}
	if lastName == nil {
		return Name{}, domainerrors.ErrNullArgument.WithField(fieldLastName)
	}

	return NewName(*firstName, *lastName)
}

// TryNewName is the non-failing variant of NewName.
func TryNewName(firstName, lastName string) (Name, bool) {
	n, err := NewName(firstName, lastName)

	return n, err == nil
}

func newName(firstName, lastName string) Name {
	return Name{
		firstName: firstName,
		lastName:  lastName,
		initials:  initial(firstName) + initial(lastName),
	}
}

func initial(s string) string {
	r, _ := utf8.DecodeRuneInString(s)

	return strings.ToUpper(string(r))
}

func (n Name) FirstName() string { return n.firstName }
func (n Name) LastName() string  { return n.lastName }
func (n Name) Initials() string  { return n.initials }

// FullName joins both components with a space.
func (n Name) FullName() string {
	return n.firstName + " " + n.lastName
}

// Fields implements ValueObject. Initials follow from the names and are left out.
func (n Name) Fields() []Field {
	return []Field{FoldedString(n.firstName), FoldedString(n.lastName)}
}

// EqualTo implements Comparer: names match without regard to case.
func (n Name) EqualTo(other ValueObject) bool {
	o, ok := other.(Name)
	if !ok {
		return false
	}
	fold := cases.Fold()

	return fold.String(n.firstName) == fold.String(o.firstName) &&
		fold.String(n.lastName) == fold.String(o.lastName)
}

// Equals reports equality with another value object.
func (n Name) Equals(other ValueObject) bool {
	return Equal(n, other)
}

// ChangeFirstName returns a Name with a new first name. Invalid input is
// ignored and the receiver is returned unchanged; compare with Equals to
// detect the no-op.
func (n Name) ChangeFirstName(firstName string) Name {
	if validateNameComponent(firstName, fieldFirstName) != nil {
		return n
	}

	return newName(firstName, n.lastName)
}

// ChangeLastName is the last-name counterpart of ChangeFirstName.
func (n Name) ChangeLastName(lastName string) Name {
	if validateNameComponent(lastName, fieldLastName) != nil {
		return n
	}

	return newName(n.firstName, lastName)
}

// ChangeFullName replaces both components, or neither if either is invalid.
func (n Name) ChangeFullName(firstName, lastName string) Name {
	changed, err := NewName(firstName, lastName)
	if err != nil {
		return n
	}

	return changed
}

func validateNameComponent(component, field string) error {
	switch {
	case component == "":
		return domainerrors.ErrEmptyArgument.WithField(field)
	case utf8.RuneCountInString(component) < minNameLength:
		return domainerrors.ErrTooShort.WithField(field)
	case strings.IndexFunc(component, unicode.IsDigit) >= 0:
		return domainerrors.ErrContainsDigit.WithField(field)
	case strings.IndexFunc(component, notNameRune) >= 0:
		return domainerrors.ErrInvalidCharacter.WithField(field)
	}

	return nil
}

// notNameRune reports runes outside letters, separators and punctuation.
func notNameRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.In(r, unicode.Z) && !unicode.IsPunct(r)
}
