// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	domainerrors "social/internal/domain/errors"
	"social/internal/domain/kernel"
)

// PostType identifies the concrete kind of a post.
type PostType string

const (
	// PostTypeText is a post made of a title and a message.
	PostTypeText PostType = "text"
)

// String returns the string representation of the PostType.
func (t PostType) String() string {
	return string(t)
}

// IsValid checks if the PostType is a valid value.
func (t PostType) IsValid() bool {
	return t == PostTypeText
}

// BasePost is the aggregate root shared by every post kind. It owns its
// comments and interactions; the summary counters always reflect them.
// LastModified tracks the post's own content only: comment and interaction
// changes leave it alone.
type BasePost struct {
	kernel.Entity[PostID]
	kind         PostType
	authorID     UserID
	dateCreated  time.Time
	lastModified time.Time
	comments     []*Comment
	interactions []Interaction

	numberOfComments     int
	numberOfInteractions int
	numberOfLikes        int
	numberOfLoves        int
	numberOfLaughs       int
}

func newBasePost(id PostID, kind PostType, authorID UserID, created, modified time.Time) (BasePost, error) {
	base, err := kernel.NewEntity(id)
	if err != nil {
		return BasePost{}, err
	}
	if authorID.IsZero() {
		return BasePost{}, domainerrors.ErrEmptyAuthor.WithField("authorId")
	}
	if modified.Before(created) {
		return BasePost{}, domainerrors.ErrModifiedBeforeCreated.WithField("lastModified")
	}

	return BasePost{
		Entity:       base,
		kind:         kind,
		authorID:     authorID,
		dateCreated:  created,
		lastModified: modified,
	}, nil
}

func (p *BasePost) Type() PostType          { return p.kind }
func (p *BasePost) AuthorID() UserID        { return p.authorID }
func (p *BasePost) DateCreated() time.Time  { return p.dateCreated }
func (p *BasePost) LastModified() time.Time { return p.lastModified }

func (p *BasePost) NumberOfComments() int     { return p.numberOfComments }
func (p *BasePost) NumberOfInteractions() int { return p.numberOfInteractions }
func (p *BasePost) NumberOfLikes() int        { return p.numberOfLikes }
func (p *BasePost) NumberOfLoves() int        { return p.numberOfLoves }
func (p *BasePost) NumberOfLaughs() int       { return p.numberOfLaughs }

// Comments returns copies of the comments in insertion order.
func (p *BasePost) Comments() []Comment {
	out := make([]Comment, len(p.comments))
	for i, c := range p.comments {
		out[i] = *c
	}

	return out
}

// Comment returns a copy of the comment with the given id.
func (p *BasePost) Comment(id CommentID) (Comment, error) {
	idx := p.commentIndex(id)
	if idx < 0 {
		return Comment{}, commentNotFound(id)
	}

	return *p.comments[idx], nil
}

// Interactions returns a copy of the interactions in insertion order.
func (p *BasePost) Interactions() []Interaction {
	return slices.Clone(p.interactions)
}

// AddComment appends a new comment by authorID and returns its id.
func (p *BasePost) AddComment(authorID UserID, message string) (CommentID, error) {
	c, err := CreateComment(authorID, message)
	if err != nil {
		return CommentID{}, err
	}
	p.comments = append(p.comments, c)
	p.recount()

	return c.ID(), nil
}

// DeleteComment removes the comment with the given id.
func (p *BasePost) DeleteComment(id CommentID) error {
	idx := p.commentIndex(id)
	if idx < 0 {
		return commentNotFound(id)
	}
	p.comments = slices.Delete(p.comments, idx, idx+1)
	p.recount()

	return nil
}

// EditComment replaces the message of the comment with the given id.
func (p *BasePost) EditComment(id CommentID, message string) error {
	idx := p.commentIndex(id)
	if idx < 0 {
		return commentNotFound(id)
	}

	return p.comments[idx].Edit(message)
}

// AddInteraction records authorID's reaction. An author holds at most one
// interaction per post; reacting again replaces the previous type.
func (p *BasePost) AddInteraction(authorID UserID, kind InteractionType) error {
	i, err := NewInteraction(authorID, kind)
	if err != nil {
		return err
	}
	if idx := p.interactionIndex(authorID); idx >= 0 {
		p.interactions[idx] = i
	} else {
		p.interactions = append(p.interactions, i)
	}
	p.recount()

	return nil
}

// RemoveInteraction removes authorID's interaction.
func (p *BasePost) RemoveInteraction(authorID UserID) error {
	idx := p.interactionIndex(authorID)
	if idx < 0 {
		return domainerrors.ErrNotFound.WithField("interaction").WithDetails(authorID.String())
	}
	p.interactions = slices.Delete(p.interactions, idx, idx+1)
	p.recount()

	return nil
}

func (p *BasePost) touch() {
	p.lastModified = time.Now().UTC()
}

func (p *BasePost) commentIndex(id CommentID) int {
	return slices.IndexFunc(p.comments, func(c *Comment) bool { return c.ID() == id })
}

func (p *BasePost) interactionIndex(authorID UserID) int {
	return slices.IndexFunc(p.interactions, func(i Interaction) bool { return i.authorID == authorID })
}

// recount derives every counter from the owned collections.
func (p *BasePost) recount() {
	p.numberOfComments = len(p.comments)
	p.numberOfInteractions = len(p.interactions)
	p.numberOfLikes, p.numberOfLoves, p.numberOfLaughs = 0, 0, 0
	for _, i := range p.interactions {
		switch i.kind {
		case InteractionLike:
			p.numberOfLikes++
		case InteractionLove:
			p.numberOfLoves++
		case InteractionLaugh:
			p.numberOfLaughs++
		}
	}
}

func commentNotFound(id CommentID) error {
	return domainerrors.ErrNotFound.WithField("comment").WithDetails(id.String())
}
