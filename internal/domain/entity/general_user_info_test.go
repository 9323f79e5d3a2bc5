package entity

import (
	"testing"

	domainerrors "social/internal/domain/errors"
	"social/internal/domain/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneralUserInfo_FormatErrors(t *testing.T) {
	name := mustName(t, "Alice", "Smith")

	_, err := NewGeneralUserInfo(stubFormats{}, GeneralUserInfoParams{
		Name:     name,
		PhotoURL: "",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidURI)

	_, err = NewGeneralUserInfo(stubFormats{}, GeneralUserInfoParams{
		Name:     name,
		PhotoURL: "https://img.example.com/a.png",
		Email:    "not-an-email",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)

	_, ok := TryNewGeneralUserInfo(stubFormats{}, GeneralUserInfoParams{Name: name, PhotoURL: "relative/path", Email: "a@b.co"})
	assert.False(t, ok)
}

func TestNewGeneralUserInfo_CopiesInterests(t *testing.T) {
	interests := []string{"go"}
	info, err := NewGeneralUserInfo(stubFormats{}, GeneralUserInfoParams{
		Name:      mustName(t, "Alice", "Smith"),
		PhotoURL:  "https://img.example.com/a.png",
		Email:     "alice@example.com",
		Interests: interests,
	})
	require.NoError(t, err)

	interests[0] = "rust"
	assert.Equal(t, []string{"go"}, info.Interests())

	info.Interests()[0] = "java"
	assert.Equal(t, []string{"go"}, info.Interests())
}

func TestGeneralUserInfo_ChangesWorkOnRestoredValue(t *testing.T) {
	u, err := NewUser(NewUserID(), mustUserInfo(t), DefaultUserSettings())
	require.NoError(t, err)
	back, err := RestoreUser(u.Snapshot())
	require.NoError(t, err)
	restored := back.UserInfo()

	changed := restored.ChangeEmail(stubFormats{}, "carol@example.com")
	assert.Equal(t, "carol@example.com", changed.Email())

	changed = restored.ChangePhotoURL(stubFormats{}, "https://cdn.example.com/carol.png")
	assert.Equal(t, "https://cdn.example.com/carol.png", changed.PhotoURL())

	var zero GeneralUserInfo
	assert.Equal(t, "carol@example.com", zero.ChangeEmail(stubFormats{}, "carol@example.com").Email())
}

func TestGeneralUserInfo_BestEffortChanges(t *testing.T) {
	info := mustUserInfo(t)

	assert.True(t, info.Equals(info.ChangePhotoURL(stubFormats{}, "")))
	assert.True(t, info.Equals(info.ChangeEmail(stubFormats{}, "not-an-email")))

	changed := info.ChangeEmail(stubFormats{}, "alice@work.example.com")
	assert.Equal(t, "alice@work.example.com", changed.Email())
	assert.Equal(t, "alice@example.com", info.Email())
	assert.False(t, info.Equals(changed))

	changed = info.ChangePhotoURL(stubFormats{}, "https://cdn.example.com/new.png")
	assert.Equal(t, "https://cdn.example.com/new.png", changed.PhotoURL())
}

func TestGeneralUserInfo_Changes(t *testing.T) {
	info := mustUserInfo(t)

	renamed := info.ChangeName(mustName(t, "Alicia", "Smith"))
	assert.Equal(t, "Alicia", renamed.Name().FirstName())

	assert.Equal(t, "hello", info.ChangeAbout("hello").About())

	_, has := info.Location()
	assert.False(t, has)
	located := info.ChangeLocation(NewLocation("Lisbon", "Lisboa", "Portugal"))
	loc, has := located.Location()
	require.True(t, has)
	assert.Equal(t, "Lisbon", loc.City())
	assert.False(t, info.Equals(located))
}

func TestGeneralUserInfo_Interests(t *testing.T) {
	info := mustUserInfo(t)

	_, ok := info.TryAddInterest("")
	assert.False(t, ok)

	added, ok := info.TryAddInterest("go")
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "DDD", "go"}, added.Interests())
	assert.Equal(t, []string{"Go", "DDD"}, info.Interests())

	removed, ok := added.TryRemoveInterest("ddd")
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "go"}, removed.Interests())

	_, ok = info.TryRemoveInterest("cooking")
	assert.False(t, ok)

	cleared := added.ClearInterests()
	assert.Empty(t, cleared.Interests())
	assert.Len(t, added.Interests(), 3)
}

func TestGeneralUserInfo_Equality(t *testing.T) {
	a := mustUserInfo(t)
	b := mustUserInfo(t)

	assert.True(t, a.Equals(b))
	assert.Equal(t, kernel.Hash(a), kernel.Hash(b))

	reordered, _ := a.ClearInterests().TryAddInterest("DDD")
	reordered, _ = reordered.TryAddInterest("Go")
	assert.False(t, a.Equals(reordered))
}
