// Package entity contains the core business objects of the project.
package entity

import "social/internal/domain/kernel"

// UserSettings holds the account-level privacy toggles.
type UserSettings struct {
	allowConnectionRequests bool
	allowMessaging          bool
	allowMentions           bool
	allowNotifications      bool
}

// NewUserSettings creates settings from explicit toggle values.
func NewUserSettings(allowConnectionRequests, allowMessaging, allowMentions, allowNotifications bool) UserSettings {
	return UserSettings{
		allowConnectionRequests: allowConnectionRequests,
		allowMessaging:          allowMessaging,
		allowMentions:           allowMentions,
		allowNotifications:      allowNotifications,
	}
}

// DefaultUserSettings enables everything.
func DefaultUserSettings() UserSettings {
	return NewUserSettings(true, true, true, true)
}

func (s UserSettings) AllowConnectionRequests() bool { return s.allowConnectionRequests }
func (s UserSettings) AllowMessaging() bool          { return s.allowMessaging }
func (s UserSettings) AllowMentions() bool           { return s.allowMentions }
func (s UserSettings) AllowNotifications() bool      { return s.allowNotifications }

func (s UserSettings) ToggleAllowConnectionRequests() UserSettings {
	s.allowConnectionRequests = !s.allowConnectionRequests

	return s
}

func (s UserSettings) ToggleAllowMessaging() UserSettings {
	s.allowMessaging = !s.allowMessaging

	return s
}

func (s UserSettings) ToggleAllowMentions() UserSettings {
	s.allowMentions = !s.allowMentions

	return s
}

func (s UserSettings) ToggleAllowNotifications() UserSettings {
	s.allowNotifications = !s.allowNotifications

	return s
}

// Fields implements kernel.ValueObject.
func (s UserSettings) Fields() []kernel.Field {
	return []kernel.Field{
		kernel.Bool(s.allowConnectionRequests),
		kernel.Bool(s.allowMessaging),
		kernel.Bool(s.allowMentions),
		kernel.Bool(s.allowNotifications),
	}
}

// Equals reports equality with another value object.
func (s UserSettings) Equals(other kernel.ValueObject) bool {
	return kernel.Equal(s, other)
}
