// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	domainerrors "social/internal/domain/errors"
	"social/internal/domain/kernel"
)

// Comment is a message left on a post. It is owned by exactly one post and
// is mutated in place through the post.
type Comment struct {
	kernel.Entity[CommentID]
	authorID     UserID
	message      string
	dateCreated  time.Time
	lastModified time.Time
}

// NewComment rebuilds a comment from stored values.
func NewComment(id CommentID, authorID UserID, message string, created, modified time.Time) (*Comment, error) {
	if id.IsZero() {
		return nil, domainerrors.ErrEmptyID.WithField("id")
	}
	if authorID.IsZero() {
		return nil, domainerrors.ErrEmptyAuthor.WithField("authorId")
	}
	if message == "" {
		return nil, domainerrors.ErrEmptyMessage.WithField("message")
	}
	if modified.Before(created) {
		return nil, domainerrors.ErrModifiedBeforeCreated.WithField("lastModified")
	}

	base, err := kernel.NewEntity(id)
	if err != nil {
		return nil, err
	}

	return &Comment{
		Entity:       base,
		authorID:     authorID,
		message:      message,
		dateCreated:  created,
		lastModified: modified,
	}, nil
}

// CreateComment creates a brand new comment stamped with the current time.
func CreateComment(authorID UserID, message string) (*Comment, error) {
	now := time.Now().UTC()

	return NewComment(NewCommentID(), authorID, message, now, now)
}

func (c *Comment) AuthorID() UserID        { return c.authorID }
func (c *Comment) Message() string         { return c.message }
func (c *Comment) DateCreated() time.Time  { return c.dateCreated }
func (c *Comment) LastModified() time.Time { return c.lastModified }

// Edit replaces the message and stamps the modification time.
func (c *Comment) Edit(message string) error {
	if message == "" {
		return domainerrors.ErrEmptyMessage.WithField("message")
	}
	c.message = message
	c.lastModified = time.Now().UTC()

	return nil
}
