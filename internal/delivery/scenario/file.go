// Package scenario replays a YAML description of users, friend requests and
// posts against the usecases.
package scenario

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// File is the decoded scenario document.
type File struct {
	Users          []UserSpec          `koanf:"users"`
	FriendRequests []FriendRequestSpec `koanf:"friendRequests"`
	Posts          []PostSpec          `koanf:"posts"`
}

// UserSpec describes a user to register. Key is the handle other steps use.
type UserSpec struct {
	Key       string        `koanf:"key"`
	FirstName *string       `koanf:"firstName"`
	LastName  *string       `koanf:"lastName"`
	Email     string        `koanf:"email"`
	PhotoURL  string        `koanf:"photoUrl"`
	About     string        `koanf:"about"`
	Interests []string      `koanf:"interests"`
	Location  *LocationSpec `koanf:"location"`
	// Settings replaces the default permissions; omitted flags are false.
	Settings *SettingsSpec `koanf:"settings"`
}

// LocationSpec is where a user lives. Lat and Long are optional.
type LocationSpec struct {
	City    string   `koanf:"city"`
	Region  string   `koanf:"region"`
	Country string   `koanf:"country"`
	Lat     *float64 `koanf:"lat"`
	Long    *float64 `koanf:"long"`
}

type SettingsSpec struct {
	AllowConnectionRequests bool `koanf:"allowConnectionRequests"`
	AllowMessaging          bool `koanf:"allowMessaging"`
	AllowMentions           bool `koanf:"allowMentions"`
	AllowNotifications      bool `koanf:"allowNotifications"`
}

// Friend request actions.
const (
	ActionNone   = "none"
	ActionAccept = "accept"
	ActionReject = "reject"
)

// FriendRequestSpec sends a request from one user key to another and answers it.
type FriendRequestSpec struct {
	From   string `koanf:"from"`
	To     string `koanf:"to"`
	Action string `koanf:"action"`
}

// PostSpec describes a text post with its comments and interactions.
type PostSpec struct {
	Key          string            `koanf:"key"`
	Author       string            `koanf:"author"`
	Title        string            `koanf:"title"`
	Message      string            `koanf:"message"`
	Comments     []CommentSpec     `koanf:"comments"`
	Interactions []InteractionSpec `koanf:"interactions"`
}

type CommentSpec struct {
	Author  string `koanf:"author"`
	Message string `koanf:"message"`
}

type InteractionSpec struct {
	Author string `koanf:"author"`
	Type   string `koanf:"type"`
}

// LoadFile reads a scenario from a YAML file.
func LoadFile(path string) (*File, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read scenario %s failed", path)
	}

	var f File
	if err := k.Unmarshal("", &f); err != nil {
		return nil, errors.Wrap(err, "decode scenario failed")
	}

	return &f, nil
}
