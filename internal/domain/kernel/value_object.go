package kernel

import "reflect"

const (
	hashSeed       uint64 = 17
	hashMultiplier uint64 = 59
)

// ValueObject is implemented by every type whose equality is derived from
// its data. Fields lists them in declaration order; a type embedding another
// value object lists the embedded fields first.
type ValueObject interface {
	Fields() []Field
}

// Comparer is implemented by value objects that replace the field walk with a
// domain rule. EqualTo is only called with a value of the same concrete type.
// Fields must still be consistent with EqualTo so that equal values hash equal.
type Comparer interface {
	ValueObject
	EqualTo(other ValueObject) bool
}

// Equal reports whether a and b are the same concrete type and carry equal
// fields. Values of different concrete types are never equal.
func Equal(a, b ValueObject) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if c, ok := a.(Comparer); ok {
		return c.EqualTo(b)
	}

	return equalFields(a.Fields(), b.Fields())
}

// Hash folds every field hash into a running accumulator.
func Hash(v ValueObject) uint64 {
	if v == nil {
		return 0
	}

	return foldHashes(v.Fields())
}

func equalFields(fa, fb []Field) bool {
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if !fa[i].Equal(fb[i]) {
			return false
		}
	}

	return true
}

func foldHashes(fields []Field) uint64 {
	h := hashSeed
	for _, f := range fields {
		h = h*hashMultiplier + f.Hash()
	}

	return h
}
