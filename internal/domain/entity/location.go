// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	domainerrors "social/internal/domain/errors"
	"social/internal/domain/kernel"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"golang.org/x/text/cases"
)

// Location is where a user lives. Two locations are equal when city, region
// and country match ignoring case; coordinates do not take part in equality.
type Location struct {
	city    string
	region  string
	country string
	point   orb.Point // lon, lat
	hasGeo  bool
}

// NewLocation creates a Location without coordinates.
func NewLocation(city, region, country string) Location {
	return Location{city: city, region: region, country: country}
}

// NewLocationWithCoordinates creates a Location with a geographic point.
func NewLocationWithCoordinates(city, region, country string, lat, long float64) (Location, error) {
	if !validCoordinate(lat, 90) || !validCoordinate(long, 180) {
		return Location{}, domainerrors.ErrInvalidCoordinates.WithField("coordinates")
	}

	l := NewLocation(city, region, country)
	l.point = orb.Point{long, lat}
	l.hasGeo = true

	return l, nil
}

func (l Location) City() string    { return l.city }
func (l Location) Region() string  { return l.region }
func (l Location) Country() string { return l.country }

// validCoordinate refuses NaN and values outside [-limit, limit], infinities included.
func validCoordinate(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}

// Coordinates returns the point and whether the location has one.
func (l Location) Coordinates() (orb.Point, bool) {
	return l.point, l.hasGeo
}

// Lat returns the latitude, zero when the location has no coordinates.
func (l Location) Lat() float64 { return l.point.Lat() }

// Long returns the longitude, zero when the location has no coordinates.
func (l Location) Long() float64 { return l.point.Lon() }

// DistanceTo returns the great-circle distance in meters. It reports false
// when either location lacks coordinates.
func (l Location) DistanceTo(other Location) (float64, bool) {
	if !l.hasGeo || !other.hasGeo {
		return 0, false
	}

	return geo.Distance(l.point, other.point), true
}

// Fields implements kernel.ValueObject.
func (l Location) Fields() []kernel.Field {
	return []kernel.Field{
		kernel.FoldedString(l.city),
		kernel.FoldedString(l.region),
		kernel.FoldedString(l.country),
	}
}

// EqualTo implements kernel.Comparer.
func (l Location) EqualTo(other kernel.ValueObject) bool {
	o, ok := other.(Location)
	if !ok {
		return false
	}
	fold := cases.Fold()

	return fold.String(l.city) == fold.String(o.city) &&
		fold.String(l.region) == fold.String(o.region) &&
		fold.String(l.country) == fold.String(o.country)
}

// Equals reports equality with another value object.
func (l Location) Equals(other kernel.ValueObject) bool {
	return kernel.Equal(l, other)
}

// ChangeCity returns a copy with a new city; an empty city leaves it unchanged.
func (l Location) ChangeCity(city string) Location {
	if city == "" {
		return l
	}
	l.city = city

	return l
}

// ChangeRegion returns a copy with a new region; an empty region leaves it unchanged.
func (l Location) ChangeRegion(region string) Location {
	if region == "" {
		return l
	}
	l.region = region

	return l
}

// ChangeCountry returns a copy with a new country; an empty country leaves it unchanged.
func (l Location) ChangeCountry(country string) Location {
	if country == "" {
		return l
	}
	l.country = country

	return l
}
