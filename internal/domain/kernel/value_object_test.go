package kernel

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type money struct {
	amount   int64
	currency string
}

func (m money) Fields() []Field {
	return []Field{Int(m.amount), String(m.currency)}
}

// price embeds money; the embedded fields come first.
type price struct {
	money
	label string
}

func (p price) Fields() []Field {
	return append(p.money.Fields(), String(p.label))
}

// sameShape has the same field layout as money but is a different type.
type sameShape struct {
	amount   int64
	currency string
}

func (s sameShape) Fields() []Field {
	return []Field{Int(s.amount), String(s.currency)}
}

// caseless overrides the field walk.
type caseless struct {
	code string
}

func (c caseless) Fields() []Field { return []Field{FoldedString(c.code)} }

func (c caseless) EqualTo(other ValueObject) bool {
	return FoldedString(c.code).Equal(FoldedString(other.(caseless).code))
}

type tagged struct {
	owner uuid.UUID
	tags  []string
	ratio float64
	on    bool
	inner ValueObject
}

func (t tagged) Fields() []Field {
	return []Field{UUID(t.owner), Strings(t.tags), Float(t.ratio), Bool(t.on), Value(t.inner)}
}

func TestEqual_Reflexive(t *testing.T) {
	values := []ValueObject{
		money{amount: 10, currency: "EUR"},
		price{money: money{amount: 1, currency: "USD"}, label: "x"},
		caseless{code: "Ab"},
		tagged{owner: uuid.New(), tags: []string{"a", "b"}, ratio: 0.5, on: true, inner: money{amount: 1}},
	}

	for _, v := range values {
		assert.True(t, Equal(v, v))
		assert.Equal(t, Hash(v), Hash(v))
	}
}

func TestEqual_SameFieldsSameHash(t *testing.T) {
	owner := uuid.New()
	a := tagged{owner: owner, tags: []string{"go", "ddd"}, ratio: 1.5, on: true, inner: money{amount: 3, currency: "EUR"}}
	b := tagged{owner: owner, tags: []string{"go", "ddd"}, ratio: 1.5, on: true, inner: money{amount: 3, currency: "EUR"}}

	assert.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b))
}

func TestEqual_DifferentTypesNeverEqual(t *testing.T) {
	m := money{amount: 10, currency: "EUR"}
	s := sameShape{amount: 10, currency: "EUR"}

	assert.False(t, Equal(m, s))
	assert.False(t, Equal(s, m))
	assert.False(t, Equal(m, price{money: m}))
}

func TestEqual_FieldMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b ValueObject
	}{
		{name: "amount", a: money{amount: 1, currency: "EUR"}, b: money{amount: 2, currency: "EUR"}},
		{name: "currency", a: money{amount: 1, currency: "EUR"}, b: money{amount: 1, currency: "eur"}},
		{name: "embedded field", a: price{money: money{amount: 1}, label: "a"}, b: price{money: money{amount: 2}, label: "a"}},
		{name: "own field", a: price{money: money{amount: 1}, label: "a"}, b: price{money: money{amount: 1}, label: "b"}},
		{name: "string order", a: tagged{tags: []string{"a", "b"}}, b: tagged{tags: []string{"b", "a"}}},
		{name: "nested nil", a: tagged{inner: money{}}, b: tagged{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Equal(tt.a, tt.b))
		})
	}
}

func TestEqual_ComparerTakesPrecedence(t *testing.T) {
	a := caseless{code: "NYC"}
	b := caseless{code: "nyc"}

	assert.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b))
}

func TestEqual_Nil(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(money{}, nil))
	assert.False(t, Equal(nil, money{}))
	assert.Equal(t, uint64(0), Hash(nil))
}

func TestHash_FoldsInDeclarationOrder(t *testing.T) {
	m := money{amount: 7, currency: "EUR"}
	want := (hashSeed*hashMultiplier+Int(7).Hash())*hashMultiplier + String("EUR").Hash()

	assert.Equal(t, want, Hash(m))

	p := price{money: m, label: "tag"}
	assert.Equal(t, want*hashMultiplier+String("tag").Hash(), Hash(p))
}

func TestFloat_SignedZeroHashesEqual(t *testing.T) {
	negZero := 0.0
	negZero = -negZero

	assert.True(t, Float(0).Equal(Float(negZero)))
	assert.Equal(t, Float(0).Hash(), Float(negZero).Hash())
}
