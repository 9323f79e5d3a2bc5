// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"

	domainerrors "social/internal/domain/errors"
	"social/internal/domain/kernel"
)

// Relationship is the state of the relation between a user and another user,
// seen from the user's side.
type Relationship string

const (
	// RelationshipUnrelated means no request and no friendship.
	RelationshipUnrelated Relationship = "unrelated"
	// RelationshipPendingIncoming means the other user asked to connect.
	RelationshipPendingIncoming Relationship = "pending_incoming"
	// RelationshipFriend means the request was accepted.
	RelationshipFriend Relationship = "friend"
)

// String returns the string representation of the Relationship.
func (r Relationship) String() string {
	return string(r)
}

// User is the aggregate root of a person's account: profile, settings and
// the friend-request workflow. A user id is never both a friend and pending.
type User struct {
	kernel.Entity[UserID]
	userInfo              GeneralUserInfo
	settings              UserSettings
	friends               []UserID
	pendingFriendRequests []UserID
}

// NewUser creates a user with no friends and no pending requests.
func NewUser(id UserID, userInfo GeneralUserInfo, settings UserSettings) (*User, error) {
	base, err := kernel.NewEntity(id)
	if err != nil {
		return nil, err
	}

	return &User{Entity: base, userInfo: userInfo, settings: settings}, nil
}

// UserSnapshot is the stored form of a User.
type UserSnapshot struct {
	ID                    UserID
	UserInfo              GeneralUserInfo
	Settings              UserSettings
	Friends               []UserID
	PendingFriendRequests []UserID
}

// RestoreUser rebuilds a user, dropping duplicate ids and refusing an id that
// is both a friend and pending.
func RestoreUser(s UserSnapshot) (*User, error) {
	u, err := NewUser(s.ID, s.UserInfo, s.Settings)
	if err != nil {
		return nil, err
	}
	for _, id := range s.Friends {
		if !slices.Contains(u.friends, id) {
			u.friends = append(u.friends, id)
		}
	}
	for _, id := range s.PendingFriendRequests {
		if slices.Contains(u.friends, id) {
			return nil, domainerrors.ErrAlreadyFriends.WithDetails(id.String())
		}
		if !slices.Contains(u.pendingFriendRequests, id) {
			u.pendingFriendRequests = append(u.pendingFriendRequests, id)
		}
	}

	return u, nil
}

// Snapshot captures the user's state. The result shares nothing with the user.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:                    u.ID(),
		UserInfo:              u.userInfo.clone(),
		Settings:              u.settings,
		Friends:               slices.Clone(u.friends),
		PendingFriendRequests: slices.Clone(u.pendingFriendRequests),
	}
}

func (u *User) UserInfo() GeneralUserInfo { return u.userInfo }
func (u *User) Settings() UserSettings    { return u.settings }
func (u *User) NumberOfFriends() int      { return len(u.friends) }

// Friends returns a copy of the friend ids in the order they were accepted.
func (u *User) Friends() []UserID {
	return slices.Clone(u.friends)
}

// PendingFriendRequests returns a copy of the pending requester ids.
func (u *User) PendingFriendRequests() []UserID {
	return slices.Clone(u.pendingFriendRequests)
}

// Relationship reports how userID relates to u.
func (u *User) Relationship(userID UserID) Relationship {
	switch {
	case slices.Contains(u.friends, userID):
		return RelationshipFriend
	case slices.Contains(u.pendingFriendRequests, userID):
		return RelationshipPendingIncoming
	default:
		return RelationshipUnrelated
	}
}

// SendFriendRequestToUser records a connection request from userID to u.
// Sending the same request twice is a no-op.
func (u *User) SendFriendRequestToUser(userID UserID) error {
	switch {
	case userID.IsZero():
		return domainerrors.ErrInvalidIdentifier.WithField("userId")
	case userID == u.ID():
		return domainerrors.ErrSelfRequest
	case slices.Contains(u.friends, userID):
		return domainerrors.ErrAlreadyFriends.WithDetails(userID.String())
	case slices.Contains(u.pendingFriendRequests, userID):
		return nil
	case !u.settings.AllowConnectionRequests():
		return domainerrors.ErrConnectionRequestsDisabled
	}
	u.pendingFriendRequests = append(u.pendingFriendRequests, userID)

	return nil
}

// AcceptFriendRequest moves userID from pending to friends.
func (u *User) AcceptFriendRequest(userID UserID) error {
	if !u.removePending(userID) {
		return domainerrors.ErrNotPending.WithDetails(userID.String())
	}
	u.friends = append(u.friends, userID)

	return nil
}

// RejectFriendRequest drops the pending request from userID.
func (u *User) RejectFriendRequest(userID UserID) error {
	if !u.removePending(userID) {
		return domainerrors.ErrNotPending.WithDetails(userID.String())
	}

	return nil
}

func (u *User) ChangeUserInfo(userInfo GeneralUserInfo) {
	u.userInfo = userInfo
}

func (u *User) ChangeAccountSettings(settings UserSettings) {
	u.settings = settings
}

func (u *User) removePending(userID UserID) bool {
	idx := slices.Index(u.pendingFriendRequests, userID)
	if idx < 0 {
		return false
	}
	u.pendingFriendRequests = slices.Delete(u.pendingFriendRequests, idx, idx+1)

	return true
}
