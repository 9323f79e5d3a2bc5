package impl

import (
	"io"
	"log/slog"
	"testing"

	"social/internal/domain/entity"
	"social/internal/domain/kernel"
	"social/internal/infra/validation"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

func newTestUser(t *testing.T, first, email string, settings entity.UserSettings) *entity.User {
	t.Helper()

	name, err := kernel.NewName(first, "Tester")
	require.NoError(t, err)
	info, err := entity.NewGeneralUserInfo(validation.New(), entity.GeneralUserInfoParams{
		Name:     name,
		PhotoURL: "https://img.example.com/" + first + ".png",
		Email:    email,
	})
	require.NoError(t, err)
	user, err := entity.NewUser(entity.NewUserID(), info, settings)
	require.NoError(t, err)

	return user
}
