package entity

import (
	"net/mail"
	"net/url"
	"testing"

	"social/internal/domain/kernel"

	"github.com/stretchr/testify/require"
)

// stubFormats is a minimal FormatValidator for domain tests.
type stubFormats struct{}

func (stubFormats) IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)

	return err == nil && addr.Address == s
}

func (stubFormats) IsURI(s string) bool {
	u, err := url.Parse(s)

	return err == nil && u.IsAbs()
}

func mustName(t *testing.T, first, last string) kernel.Name {
	t.Helper()

	n, err := kernel.NewName(first, last)
	require.NoError(t, err)

	return n
}

func mustUserInfo(t *testing.T) GeneralUserInfo {
	t.Helper()

	info, err := NewGeneralUserInfo(stubFormats{}, GeneralUserInfoParams{
		Name:      mustName(t, "Alice", "Smith"),
		PhotoURL:  "https://img.example.com/alice.png",
		Email:     "alice@example.com",
		Interests: []string{"Go", "DDD"},
	})
	require.NoError(t, err)

	return info
}
