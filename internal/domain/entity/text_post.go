// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	domainerrors "social/internal/domain/errors"
)

// TextPost is a post made of a title and a message.
type TextPost struct {
	BasePost
	title   string
	message string
}

// NewTextPost creates a post by authorID with no comments or interactions.
func NewTextPost(authorID UserID, title, message string) (*TextPost, error) {
	if err := validateTextPost(title, message); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	base, err := newBasePost(NewPostID(), PostTypeText, authorID, now, now)
	if err != nil {
		return nil, err
	}

	post := &TextPost{BasePost: base, title: title, message: message}
	post.recount()

	return post, nil
}

// CommentSnapshot is the stored form of a Comment.
type CommentSnapshot struct {
	ID           CommentID
	AuthorID     UserID
	Message      string
	DateCreated  time.Time
	LastModified time.Time
}

// InteractionSnapshot is the stored form of an Interaction.
type InteractionSnapshot struct {
	AuthorID UserID
	Type     InteractionType
}

// TextPostSnapshot is the stored form of a TextPost.
type TextPostSnapshot struct {
	ID           PostID
	AuthorID     UserID
	Title        string
	Message      string
	DateCreated  time.Time
	LastModified time.Time
	Comments     []CommentSnapshot
	Interactions []InteractionSnapshot
}

// RestoreTextPost rebuilds a post from a snapshot, validating every child and
// deriving the counters from the restored collections.
func RestoreTextPost(s TextPostSnapshot) (*TextPost, error) {
	if err := validateTextPost(s.Title, s.Message); err != nil {
		return nil, err
	}

	base, err := newBasePost(s.ID, PostTypeText, s.AuthorID, s.DateCreated, s.LastModified)
	if err != nil {
		return nil, err
	}

	post := &TextPost{BasePost: base, title: s.Title, message: s.Message}

	post.comments = make([]*Comment, 0, len(s.Comments))
	for _, cs := range s.Comments {
		c, err := NewComment(cs.ID, cs.AuthorID, cs.Message, cs.DateCreated, cs.LastModified)
		if err != nil {
			return nil, err
		}
		post.comments = append(post.comments, c)
	}

	post.interactions = make([]Interaction, 0, len(s.Interactions))
	for _, is := range s.Interactions {
		i, err := NewInteraction(is.AuthorID, is.Type)
		if err != nil {
			return nil, err
		}
		if post.interactionIndex(is.AuthorID) >= 0 {
			return nil, domainerrors.ErrDuplicateInteraction.WithDetails(is.AuthorID.String())
		}
		post.interactions = append(post.interactions, i)
	}

	post.recount()

	return post, nil
}

// Snapshot captures the post's state. The result shares nothing with the post.
func (p *TextPost) Snapshot() TextPostSnapshot {
	s := TextPostSnapshot{
		ID:           p.ID(),
		AuthorID:     p.authorID,
		Title:        p.title,
		Message:      p.message,
		DateCreated:  p.dateCreated,
		LastModified: p.lastModified,
		Comments:     make([]CommentSnapshot, len(p.comments)),
		Interactions: make([]InteractionSnapshot, len(p.interactions)),
	}
	for i, c := range p.comments {
		s.Comments[i] = CommentSnapshot{
			ID:           c.ID(),
			AuthorID:     c.authorID,
			Message:      c.message,
			DateCreated:  c.dateCreated,
			LastModified: c.lastModified,
		}
	}
	for i, in := range p.interactions {
		s.Interactions[i] = InteractionSnapshot{AuthorID: in.authorID, Type: in.kind}
	}

	return s
}

func (p *TextPost) Title() string   { return p.title }
func (p *TextPost) Message() string { return p.message }

// EditMessage replaces the post body.
func (p *TextPost) EditMessage(message string) error {
	if message == "" {
		return domainerrors.ErrEmptyMessage.WithField("message")
	}
	p.message = message
	p.touch()

	return nil
}

// EditTitle replaces the post title.
func (p *TextPost) EditTitle(title string) error {
	if title == "" {
		return domainerrors.ErrEmptyTitle.WithField("title")
	}
	p.title = title
	p.touch()

	return nil
}

func validateTextPost(title, message string) error {
	if title == "" {
		return domainerrors.ErrEmptyTitle.WithField("title")
	}
	if message == "" {
		return domainerrors.ErrEmptyMessage.WithField("message")
	}

	return nil
}
