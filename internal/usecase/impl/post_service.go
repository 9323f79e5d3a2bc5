package impl

import (
	"context"
	"log/slog"

	deliverycontext "social/internal/delivery/context"
	"social/internal/domain/entity"
	domainerrors "social/internal/domain/errors"
	"social/internal/domain/repository"
	"social/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewPostService creates a new post service instance
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost publishes a new text post for an existing author.
func (srv *postService) CreatePost(ctx context.Context, input usecase.CreatePostInput) (*entity.TextPost, error) {
	if err := srv.ensureUser(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	post, err := entity.NewTextPost(input.AuthorID, input.Title, input.Message)
	if err != nil {
		return nil, err
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created",
		slog.String("postID", post.ID().String()),
		slog.String("authorID", input.AuthorID.String()),
		slog.String("title", post.Title()),
	)

	return post, nil
}

// GetPost loads a post by id.
func (srv *postService) GetPost(ctx context.Context, postID entity.PostID) (*entity.TextPost, error) {
	return srv.findPost(ctx, postID)
}

// ListAuthorPosts returns the author's posts, oldest first.
func (srv *postService) ListAuthorPosts(ctx context.Context, authorID entity.UserID) ([]*entity.TextPost, error) {
	posts, err := srv.postRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find posts by author")
	}

	return posts, nil
}

// EditPost replaces title and message. Empty fields are left unchanged and
// nothing is stored when both are empty.
func (srv *postService) EditPost(ctx context.Context, postID entity.PostID, title, message string) (*entity.TextPost, error) {
	post, err := srv.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if title == "" && message == "" {
		return post, nil
	}

	if title != "" {
		if err := post.EditTitle(title); err != nil {
			return nil, err
		}
	}
	if message != "" {
		if err := post.EditMessage(message); err != nil {
			return nil, err
		}
	}
	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to update post")
	}

	return post, nil
}

// DeletePost removes a post.
func (srv *postService) DeletePost(ctx context.Context, postID entity.PostID) error {
	err := srv.postRepo.Delete(ctx, postID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return postNotFound(postID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.String("postID", postID.String()))

	return nil
}

// AddComment appends a comment by an existing user and returns its id.
func (srv *postService) AddComment(ctx context.Context, input usecase.CommentInput) (entity.CommentID, error) {
	if err := srv.ensureUser(ctx, input.AuthorID); err != nil {
		return entity.CommentID{}, err
	}

	var commentID entity.CommentID
	err := srv.mutatePost(ctx, input.PostID, func(post *entity.TextPost) error {
		var err error
		commentID, err = post.AddComment(input.AuthorID, input.Message)

		return err
	})
	if err != nil {
		return entity.CommentID{}, err
	}

	srv.log(ctx).Debug("Comment added",
		slog.String("postID", input.PostID.String()),
		slog.String("commentID", commentID.String()),
	)

	return commentID, nil
}

// EditComment changes the message of a comment.
func (srv *postService) EditComment(ctx context.Context, postID entity.PostID, commentID entity.CommentID, message string) error {
	return srv.mutatePost(ctx, postID, func(post *entity.TextPost) error {
		return post.EditComment(commentID, message)
	})
}

// DeleteComment removes a comment from a post.
func (srv *postService) DeleteComment(ctx context.Context, postID entity.PostID, commentID entity.CommentID) error {
	return srv.mutatePost(ctx, postID, func(post *entity.TextPost) error {
		return post.DeleteComment(commentID)
	})
}

// React sets the author's interaction on a post, replacing any earlier one.
func (srv *postService) React(ctx context.Context, input usecase.InteractionInput) error {
	if err := srv.ensureUser(ctx, input.AuthorID); err != nil {
		return err
	}

	return srv.mutatePost(ctx, input.PostID, func(post *entity.TextPost) error {
		return post.AddInteraction(input.AuthorID, input.Type)
	})
}

// RemoveReaction drops the author's interaction on a post.
func (srv *postService) RemoveReaction(ctx context.Context, postID entity.PostID, authorID entity.UserID) error {
	return srv.mutatePost(ctx, postID, func(post *entity.TextPost) error {
		return post.RemoveInteraction(authorID)
	})
}

// mutatePost loads the post, applies fn and stores the result when fn succeeds.
func (srv *postService) mutatePost(ctx context.Context, postID entity.PostID, fn func(*entity.TextPost) error) error {
	post, err := srv.findPost(ctx, postID)
	if err != nil {
		return err
	}
	if err := fn(post); err != nil {
		return err
	}
	if err := srv.postRepo.Update(ctx, post); err != nil {
		return errors.Wrap(err, "failed to update post")
	}

	return nil
}

func (srv *postService) findPost(ctx context.Context, postID entity.PostID) (*entity.TextPost, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, postNotFound(postID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return post, nil
}

func (srv *postService) ensureUser(ctx context.Context, userID entity.UserID) error {
	_, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrNotFound.WithField("userId").WithDetails(userID.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user by ID")
	}

	return nil
}

func postNotFound(postID entity.PostID) error {
	return domainerrors.ErrNotFound.WithField("postId").WithDetails(postID.String())
}
