package impl

import (
	"context"
	"testing"

	"social/internal/domain/entity"
	domainerrors "social/internal/domain/errors"
	"social/internal/domain/repository"
	mockRepo "social/internal/mocks/repository"
	"social/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service  usecase.PostUsecase
	postRepo *mockRepo.MockPostRepository
	userRepo *mockRepo.MockUserRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return postServiceFixtures{
		service:  service,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func newTestPost(t *testing.T, authorID entity.UserID) *entity.TextPost {
	t.Helper()

	post, err := entity.NewTextPost(authorID, "Hello", "First post")
	require.NoError(t, err)

	return post
}

func TestPostService_CreatePost_Success(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	author := newTestUser(t, "Alice", "alice@example.com", entity.DefaultUserSettings())

	fx.userRepo.EXPECT().FindByID(ctx, author.ID()).Return(author, nil)
	fx.postRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.TextPost")).Return(nil)

	post, err := fx.service.CreatePost(ctx, usecase.CreatePostInput{
		AuthorID: author.ID(),
		Title:    "Hello",
		Message:  "First post",
	})
	require.NoError(t, err)
	assert.Equal(t, author.ID(), post.AuthorID())
	assert.Equal(t, entity.PostTypeText, post.Type())
	assert.Zero(t, post.NumberOfComments())
}

func TestPostService_CreatePost_Failures(t *testing.T) {
	t.Run("unknown author", func(t *testing.T) {
		fx := createTestPostService(t)
		ctx := context.Background()
		authorID := entity.NewUserID()

		fx.userRepo.EXPECT().FindByID(ctx, authorID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.CreatePost(ctx, usecase.CreatePostInput{AuthorID: authorID, Title: "t", Message: "m"})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("empty title", func(t *testing.T) {
		fx := createTestPostService(t)
		ctx := context.Background()
		author := newTestUser(t, "Alice", "alice@example.com", entity.DefaultUserSettings())

		fx.userRepo.EXPECT().FindByID(ctx, author.ID()).Return(author, nil)

		_, err := fx.service.CreatePost(ctx, usecase.CreatePostInput{AuthorID: author.ID(), Message: "m"})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyTitle)
	})

	t.Run("store error", func(t *testing.T) {
		fx := createTestPostService(t)
		ctx := context.Background()
		author := newTestUser(t, "Alice", "alice@example.com", entity.DefaultUserSettings())

		fx.userRepo.EXPECT().FindByID(ctx, author.ID()).Return(author, nil)
		fx.postRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.TextPost")).Return(errors.New("disk full"))

		_, err := fx.service.CreatePost(ctx, usecase.CreatePostInput{AuthorID: author.ID(), Title: "t", Message: "m"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create post")
	})
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	postID := entity.NewPostID()

	fx.postRepo.EXPECT().FindByID(ctx, postID).Return(nil, repository.ErrPostNotFound)

	post, err := fx.service.GetPost(ctx, postID)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPostService_ListAuthorPosts(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	authorID := entity.NewUserID()
	posts := []*entity.TextPost{newTestPost(t, authorID), newTestPost(t, authorID)}

	fx.postRepo.EXPECT().FindByAuthor(ctx, authorID).Return(posts, nil)

	got, err := fx.service.ListAuthorPosts(ctx, authorID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestPostService_EditPost(t *testing.T) {
	t.Run("updates the given fields", func(t *testing.T) {
		fx := createTestPostService(t)
		ctx := context.Background()
		post := newTestPost(t, entity.NewUserID())

		fx.postRepo.EXPECT().FindByID(ctx, post.ID()).Return(post, nil)
		fx.postRepo.EXPECT().Update(ctx, post).Return(nil)

		edited, err := fx.service.EditPost(ctx, post.ID(), "", "Second draft")
		require.NoError(t, err)
		assert.Equal(t, "Hello", edited.Title())
		assert.Equal(t, "Second draft", edited.Message())
	})

	t.Run("nothing to change", func(t *testing.T) {
		fx := createTestPostService(t)
		ctx := context.Background()
		post := newTestPost(t, entity.NewUserID())

		fx.postRepo.EXPECT().FindByID(ctx, post.ID()).Return(post, nil)

		edited, err := fx.service.EditPost(ctx, post.ID(), "", "")
		require.NoError(t, err)
		assert.Same(t, post, edited)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	postID := entity.NewPostID()

	fx.postRepo.EXPECT().Delete(ctx, postID).Return(nil).Once()
	fx.postRepo.EXPECT().Delete(ctx, postID).Return(repository.ErrPostNotFound).Once()

	require.NoError(t, fx.service.DeletePost(ctx, postID))
	assert.ErrorIs(t, fx.service.DeletePost(ctx, postID), domainerrors.ErrNotFound)
}

func TestPostService_AddComment(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	commenter := newTestUser(t, "Bob", "bob@example.com", entity.DefaultUserSettings())
	post := newTestPost(t, entity.NewUserID())

	fx.userRepo.EXPECT().FindByID(ctx, commenter.ID()).Return(commenter, nil)
	fx.postRepo.EXPECT().FindByID(ctx, post.ID()).Return(post, nil)
	fx.postRepo.EXPECT().Update(ctx, post).Return(nil)

	commentID, err := fx.service.AddComment(ctx, usecase.CommentInput{
		PostID:   post.ID(),
		AuthorID: commenter.ID(),
		Message:  "hi",
	})
	require.NoError(t, err)
	assert.False(t, commentID.IsZero())
	assert.Equal(t, 1, post.NumberOfComments())

	comment, err := post.Comment(commentID)
	require.NoError(t, err)
	assert.Equal(t, commenter.ID(), comment.AuthorID())
}

func TestPostService_AddComment_EmptyMessageIsNotStored(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	commenter := newTestUser(t, "Bob", "bob@example.com", entity.DefaultUserSettings())
	post := newTestPost(t, entity.NewUserID())

	fx.userRepo.EXPECT().FindByID(ctx, commenter.ID()).Return(commenter, nil)
	fx.postRepo.EXPECT().FindByID(ctx, post.ID()).Return(post, nil)

	_, err := fx.service.AddComment(ctx, usecase.CommentInput{PostID: post.ID(), AuthorID: commenter.ID()})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)
}

func TestPostService_CommentNotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	post := newTestPost(t, entity.NewUserID())
	missing := entity.NewCommentID()

	fx.postRepo.EXPECT().FindByID(ctx, post.ID()).Return(post, nil).Twice()

	assert.ErrorIs(t, fx.service.EditComment(ctx, post.ID(), missing, "edited"), domainerrors.ErrNotFound)
	assert.ErrorIs(t, fx.service.DeleteComment(ctx, post.ID(), missing), domainerrors.ErrNotFound)
}

func TestPostService_EditAndDeleteComment(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	post := newTestPost(t, entity.NewUserID())
	commentID, err := post.AddComment(entity.NewUserID(), "first")
	require.NoError(t, err)

	fx.postRepo.EXPECT().FindByID(ctx, post.ID()).Return(post, nil)
	fx.postRepo.EXPECT().Update(ctx, post).Return(nil)

	require.NoError(t, fx.service.EditComment(ctx, post.ID(), commentID, "edited"))
	comment, err := post.Comment(commentID)
	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Message())

	require.NoError(t, fx.service.DeleteComment(ctx, post.ID(), commentID))
	assert.Zero(t, post.NumberOfComments())
}

func TestPostService_Reactions(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	reader := newTestUser(t, "Bob", "bob@example.com", entity.DefaultUserSettings())
	post := newTestPost(t, entity.NewUserID())

	fx.userRepo.EXPECT().FindByID(ctx, reader.ID()).Return(reader, nil)
	fx.postRepo.EXPECT().FindByID(ctx, post.ID()).Return(post, nil)
	fx.postRepo.EXPECT().Update(ctx, post).Return(nil)

	require.NoError(t, fx.service.React(ctx, usecase.InteractionInput{PostID: post.ID(), AuthorID: reader.ID(), Type: entity.InteractionLike}))
	assert.Equal(t, 1, post.NumberOfLikes())

	require.NoError(t, fx.service.React(ctx, usecase.InteractionInput{PostID: post.ID(), AuthorID: reader.ID(), Type: entity.InteractionLove}))
	assert.Equal(t, 1, post.NumberOfInteractions())
	assert.Zero(t, post.NumberOfLikes())
	assert.Equal(t, 1, post.NumberOfLoves())

	require.NoError(t, fx.service.RemoveReaction(ctx, post.ID(), reader.ID()))
	assert.Zero(t, post.NumberOfInteractions())

	assert.ErrorIs(t, fx.service.RemoveReaction(ctx, post.ID(), reader.ID()), domainerrors.ErrNotFound)
}

func TestPostService_React_InvalidType(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	reader := newTestUser(t, "Bob", "bob@example.com", entity.DefaultUserSettings())
	post := newTestPost(t, entity.NewUserID())

	fx.userRepo.EXPECT().FindByID(ctx, reader.ID()).Return(reader, nil)
	fx.postRepo.EXPECT().FindByID(ctx, post.ID()).Return(post, nil)

	err := fx.service.React(ctx, usecase.InteractionInput{PostID: post.ID(), AuthorID: reader.ID(), Type: "shrug"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInteraction)
}
