package kernel

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Field is one data member of a value object as seen by Equal and Hash.
type Field interface {
	Equal(other Field) bool
	Hash() uint64
}

type stringField string

// String is a case-sensitive string field.
func String(s string) Field { return stringField(s) }

func (f stringField) Equal(other Field) bool {
	o, ok := other.(stringField)

	return ok && f == o
}

func (f stringField) Hash() uint64 { return xxhash.Sum64String(string(f)) }

type foldedField string

// FoldedString is a string field compared without regard to case.
func FoldedString(s string) Field { return foldedField(cases.Fold().String(s)) }

func (f foldedField) Equal(other Field) bool {
	o, ok := other.(foldedField)

	return ok && f == o
}

func (f foldedField) Hash() uint64 { return xxhash.Sum64String(string(f)) }

type boolField bool

// Bool is a boolean field.
func Bool(b bool) Field { return boolField(b) }

func (f boolField) Equal(other Field) bool {
	o, ok := other.(boolField)

	return ok && f == o
}

func (f boolField) Hash() uint64 {
	if f {
		return 1
	}

	return 0
}

type intField int64

// Int is an integer field.
func Int(i int64) Field { return intField(i) }

func (f intField) Equal(other Field) bool {
	o, ok := other.(intField)

	return ok && f == o
}

func (f intField) Hash() uint64 { return uint64(f) }

type floatField float64

// Float is a floating point field. NaN equals NaN so that Equal stays reflexive.
func Float(v float64) Field { return floatField(v) }

func (f floatField) Equal(other Field) bool {
	o, ok := other.(floatField)
	if !ok {
		return false
	}
	if math.IsNaN(float64(f)) && math.IsNaN(float64(o)) {
		return true
	}

	return f == o
}

func (f floatField) Hash() uint64 {
	v := float64(f)
	switch {
	case v == 0:
		// +0 and -0 compare equal.
		return 0
	case math.IsNaN(v):
		return math.Float64bits(math.NaN())
	}

	return math.Float64bits(v)
}

type uuidField uuid.UUID

// UUID is an identifier field.
func UUID(id uuid.UUID) Field { return uuidField(id) }

func (f uuidField) Equal(other Field) bool {
	o, ok := other.(uuidField)

	return ok && f == o
}

func (f uuidField) Hash() uint64 { return xxhash.Sum64(f[:]) }

type stringsField []string

// Strings is an ordered sequence of strings; order and duplicates matter.
func Strings(ss []string) Field { return stringsField(ss) }

func (f stringsField) Equal(other Field) bool {
	o, ok := other.(stringsField)
	if !ok || len(f) != len(o) {
		return false
	}
	for i := range f {
		if f[i] != o[i] {
			return false
		}
	}

	return true
}

func (f stringsField) Hash() uint64 {
	d := xxhash.New()
	var sep [8]byte
	for _, s := range f {
		binary.LittleEndian.PutUint64(sep[:], uint64(len(s)))
		_, _ = d.Write(sep[:])
		_, _ = d.WriteString(s)
	}

	return d.Sum64()
}

type valueField struct {
	v ValueObject
}

// Value nests another value object. A nil v is a valid, absent value.
func Value(v ValueObject) Field { return valueField{v: v} }

func (f valueField) Equal(other Field) bool {
	o, ok := other.(valueField)

	return ok && Equal(f.v, o.v)
}

func (f valueField) Hash() uint64 { return Hash(f.v) }
