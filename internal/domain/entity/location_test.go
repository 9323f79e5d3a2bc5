package entity

import (
	"math"
	"testing"

	domainerrors "social/internal/domain/errors"
	"social/internal/domain/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_EqualityIgnoresCase(t *testing.T) {
	a := NewLocation("nyc", "ny", "usa")
	b := NewLocation("NYC", "NY", "USA")

	assert.True(t, a.Equals(b))
	assert.Equal(t, kernel.Hash(a), kernel.Hash(b))
	assert.False(t, a.Equals(NewLocation("nyc", "nj", "usa")))
}

func TestLocation_CoordinatesDoNotAffectEquality(t *testing.T) {
	a, err := NewLocationWithCoordinates("Lisbon", "Lisboa", "Portugal", 38.72, -9.14)
	require.NoError(t, err)
	b := NewLocation("lisbon", "lisboa", "portugal")

	assert.True(t, a.Equals(b))
	assert.Equal(t, kernel.Hash(a), kernel.Hash(b))
}

func TestLocation_NotEqualToOtherValueTypes(t *testing.T) {
	assert.False(t, NewLocation("a", "b", "c").Equals(DefaultUserSettings()))
}

func TestNewLocationWithCoordinates_OutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		lat, long float64
	}{
		{name: "lat above", lat: 91, long: 0},
		{name: "lat below", lat: -91, long: 0},
		{name: "long above", lat: 0, long: 181},
		{name: "long below", lat: 0, long: -181},
		{name: "lat NaN", lat: math.NaN(), long: 0},
		{name: "long NaN", lat: 0, long: math.NaN()},
		{name: "lat infinite", lat: math.Inf(1), long: 0},
		{name: "long infinite", lat: 0, long: math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocationWithCoordinates("a", "b", "c", tt.lat, tt.long)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
		})
	}
}

func TestNewLocationWithCoordinates_Bounds(t *testing.T) {
	pole, err := NewLocationWithCoordinates("a", "b", "c", 90, -180)
	require.NoError(t, err)
	assert.Equal(t, 90.0, pole.Lat())
	assert.Equal(t, -180.0, pole.Long())
}

func TestLocation_DistanceTo(t *testing.T) {
	lisbon, err := NewLocationWithCoordinates("Lisbon", "Lisboa", "Portugal", 38.7223, -9.1393)
	require.NoError(t, err)
	porto, err := NewLocationWithCoordinates("Porto", "Porto", "Portugal", 41.1579, -8.6291)
	require.NoError(t, err)

	d, ok := lisbon.DistanceTo(porto)
	require.True(t, ok)
	assert.InDelta(t, 274_000, d, 5_000)

	_, ok = lisbon.DistanceTo(NewLocation("x", "y", "z"))
	assert.False(t, ok)

	assert.InDelta(t, 38.7223, lisbon.Lat(), 1e-9)
	assert.InDelta(t, -9.1393, lisbon.Long(), 1e-9)
}

func TestLocation_Changes(t *testing.T) {
	l, err := NewLocationWithCoordinates("Lisbon", "Lisboa", "Portugal", 38.72, -9.14)
	require.NoError(t, err)

	moved := l.ChangeCity("Sintra")
	assert.Equal(t, "Sintra", moved.City())
	assert.Equal(t, "Lisbon", l.City())
	_, hasGeo := moved.Coordinates()
	assert.True(t, hasGeo)

	assert.Equal(t, "Norte", l.ChangeRegion("Norte").Region())
	assert.Equal(t, "Spain", l.ChangeCountry("Spain").Country())

	assert.True(t, l.Equals(l.ChangeCity("")))
	assert.True(t, l.Equals(l.ChangeRegion("")))
	assert.True(t, l.Equals(l.ChangeCountry("")))
}
