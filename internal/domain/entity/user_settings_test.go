package entity

import (
	"testing"

	"social/internal/domain/kernel"

	"github.com/stretchr/testify/assert"
)

func TestUserSettings_ToggleRoundTrip(t *testing.T) {
	original := NewUserSettings(true, false, true, false)

	toggles := map[string]func(UserSettings) UserSettings{
		"connection requests": UserSettings.ToggleAllowConnectionRequests,
		"messaging":           UserSettings.ToggleAllowMessaging,
		"mentions":            UserSettings.ToggleAllowMentions,
		"notifications":       UserSettings.ToggleAllowNotifications,
	}

	for name, toggle := range toggles {
		t.Run(name, func(t *testing.T) {
			once := toggle(original)
			assert.False(t, once.Equals(original))
			assert.True(t, toggle(once).Equals(original))
			assert.Equal(t, kernel.Hash(original), kernel.Hash(toggle(once)))
		})
	}
}

func TestUserSettings_ToggleIsIndependent(t *testing.T) {
	s := DefaultUserSettings().ToggleAllowMessaging()

	assert.True(t, s.AllowConnectionRequests())
	assert.False(t, s.AllowMessaging())
	assert.True(t, s.AllowMentions())
	assert.True(t, s.AllowNotifications())
}
