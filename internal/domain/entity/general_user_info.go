// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	domainerrors "social/internal/domain/errors"
	"social/internal/domain/kernel"
	"social/internal/domain/service"

	"golang.org/x/text/cases"
)

// GeneralUserInfo is the public profile of a user.
//
// Change operations never modify the receiver. ChangePhotoURL and ChangeEmail
// follow a best-effort policy: invalid input returns the receiver unchanged,
// which callers detect by comparing before and after with Equals.
type GeneralUserInfo struct {
	name        kernel.Name
	photoURL    string
	email       string
	about       string
	location    Location
	hasLocation bool
	interests   []string
}

// GeneralUserInfoParams holds the fields of a new GeneralUserInfo.
type GeneralUserInfoParams struct {
	Name      kernel.Name
	PhotoURL  string
	Email     string
	About     string
	Location  *Location
	Interests []string
}

// NewGeneralUserInfo validates the photo URL and email through formats.
func NewGeneralUserInfo(formats service.FormatValidator, params GeneralUserInfoParams) (GeneralUserInfo, error) {
	if !formats.IsURI(params.PhotoURL) {
		return GeneralUserInfo{}, domainerrors.ErrInvalidURI.WithField("photoUrl")
	}
	if !formats.IsEmail(params.Email) {
		return GeneralUserInfo{}, domainerrors.ErrInvalidEmail.WithField("email")
	}

	info := GeneralUserInfo{
		name:      params.Name,
		photoURL:  params.PhotoURL,
		email:     params.Email,
		about:     params.About,
		interests: slices.Clone(params.Interests),
	}
	if params.Location != nil {
		info.location = *params.Location
		info.hasLocation = true
	}

	return info, nil
}

// TryNewGeneralUserInfo is the non-failing variant of NewGeneralUserInfo.
func TryNewGeneralUserInfo(formats service.FormatValidator, params GeneralUserInfoParams) (GeneralUserInfo, bool) {
	info, err := NewGeneralUserInfo(formats, params)

	return info, err == nil
}

func (g GeneralUserInfo) Name() kernel.Name { return g.name }
func (g GeneralUserInfo) PhotoURL() string  { return g.photoURL }
func (g GeneralUserInfo) Email() string     { return g.email }
func (g GeneralUserInfo) About() string     { return g.about }

// Location returns the location and whether one is set.
func (g GeneralUserInfo) Location() (Location, bool) {
	return g.location, g.hasLocation
}

// Interests returns a copy of the interests in insertion order.
func (g GeneralUserInfo) Interests() []string {
	return slices.Clone(g.interests)
}

// Fields implements kernel.ValueObject.
func (g GeneralUserInfo) Fields() []kernel.Field {
	return []kernel.Field{
		kernel.Value(g.name),
		kernel.String(g.photoURL),
		kernel.String(g.email),
		kernel.String(g.about),
		kernel.Bool(g.hasLocation),
		kernel.Value(g.location),
		kernel.Strings(g.interests),
	}
}

// Equals reports equality with another value object.
func (g GeneralUserInfo) Equals(other kernel.ValueObject) bool {
	return kernel.Equal(g, other)
}

// clone copies g with its own interests slice.
func (g GeneralUserInfo) clone() GeneralUserInfo {
	g.interests = slices.Clone(g.interests)

	return g
}

func (g GeneralUserInfo) ChangeName(name kernel.Name) GeneralUserInfo {
	c := g.clone()
	c.name = name

	return c
}

// ChangePhotoURL returns the receiver unchanged if formats rejects photoURL.
func (g GeneralUserInfo) ChangePhotoURL(formats service.FormatValidator, photoURL string) GeneralUserInfo {
	if !formats.IsURI(photoURL) {
		return g
	}
	c := g.clone()
	c.photoURL = photoURL

	return c
}

// ChangeEmail returns the receiver unchanged if formats rejects email.
func (g GeneralUserInfo) ChangeEmail(formats service.FormatValidator, email string) GeneralUserInfo {
	if !formats.IsEmail(email) {
		return g
	}
	c := g.clone()
	c.email = email

	return c
}

func (g GeneralUserInfo) ChangeAbout(about string) GeneralUserInfo {
	c := g.clone()
	c.about = about

	return c
}

func (g GeneralUserInfo) ChangeLocation(location Location) GeneralUserInfo {
	c := g.clone()
	c.location = location
	c.hasLocation = true

	return c
}

// TryAddInterest appends interest. Empty interests are refused.
func (g GeneralUserInfo) TryAddInterest(interest string) (GeneralUserInfo, bool) {
	if interest == "" {
		return g, false
	}
	c := g.clone()
	c.interests = append(c.interests, interest)

	return c, true
}

// TryRemoveInterest removes the first interest matching without regard to case.
func (g GeneralUserInfo) TryRemoveInterest(interest string) (GeneralUserInfo, bool) {
	fold := cases.Fold()
	needle := fold.String(interest)
	idx := slices.IndexFunc(g.interests, func(i string) bool {
		return fold.String(i) == needle
	})
	if idx < 0 {
		return g, false
	}
	c := g.clone()
	c.interests = slices.Delete(c.interests, idx, idx+1)

	return c, true
}

// ClearInterests returns a copy without interests.
func (g GeneralUserInfo) ClearInterests() GeneralUserInfo {
	c := g
	c.interests = nil

	return c
}
