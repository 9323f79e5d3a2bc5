// Package validation implements the domain FormatValidator with go-playground/validator.
package validation

import (
	"net/url"

	"social/internal/domain/service"

	"github.com/go-playground/validator/v10"
)

type formatValidator struct {
	validate *validator.Validate
}

// New creates a FormatValidator backed by validator/v10 tags.
func New() service.FormatValidator {
	return &formatValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// IsEmail implements service.FormatValidator.
func (v *formatValidator) IsEmail(s string) bool {
	if s == "" {
		return false
	}

	return v.validate.Var(s, "email") == nil
}

// IsURI implements service.FormatValidator. Relative references are refused.
func (v *formatValidator) IsURI(s string) bool {
	if s == "" || v.validate.Var(s, "uri") != nil {
		return false
	}
	u, err := url.Parse(s)

	return err == nil && u.IsAbs()
}
