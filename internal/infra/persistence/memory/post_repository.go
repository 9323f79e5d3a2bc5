package memory

import (
	"context"
	"slices"
	"sync"

	"social/internal/domain/entity"
	"social/internal/domain/repository"

	"github.com/pkg/errors"
)

// postRepository implements the repository.PostRepository interface over a map.
type postRepository struct {
	mu    sync.RWMutex
	posts map[entity.PostID]entity.TextPostSnapshot
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository() repository.PostRepository {
	return &postRepository{
		posts: make(map[entity.PostID]entity.TextPostSnapshot),
	}
}

func (repo *postRepository) FindByID(_ context.Context, id entity.PostID) (*entity.TextPost, error) {
	repo.mu.RLock()
	snapshot, ok := repo.posts[id]
	repo.mu.RUnlock()

	if !ok {
		return nil, repository.ErrPostNotFound
	}

	return toPostDomain(snapshot)
}

// FindByAuthor returns the author's posts ordered by creation time.
func (repo *postRepository) FindByAuthor(_ context.Context, authorID entity.UserID) ([]*entity.TextPost, error) {
	repo.mu.RLock()
	snapshots := make([]entity.TextPostSnapshot, 0)
	for _, snapshot := range repo.posts {
		if snapshot.AuthorID == authorID {
			snapshots = append(snapshots, snapshot)
		}
	}
	repo.mu.RUnlock()

	slices.SortFunc(snapshots, func(a, b entity.TextPostSnapshot) int {
		return a.DateCreated.Compare(b.DateCreated)
	})

	posts := make([]*entity.TextPost, 0, len(snapshots))
	for _, snapshot := range snapshots {
		post, err := toPostDomain(snapshot)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (repo *postRepository) Create(_ context.Context, post *entity.TextPost) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.posts[post.ID()]; exists {
		return repository.ErrPostAlreadyExists
	}
	repo.posts[post.ID()] = post.Snapshot()

	return nil
}

func (repo *postRepository) Update(_ context.Context, post *entity.TextPost) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.posts[post.ID()]; !exists {
		return repository.ErrPostNotFound
	}
	repo.posts[post.ID()] = post.Snapshot()

	return nil
}

func (repo *postRepository) Delete(_ context.Context, id entity.PostID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.posts[id]; !exists {
		return repository.ErrPostNotFound
	}
	delete(repo.posts, id)

	return nil
}

func toPostDomain(snapshot entity.TextPostSnapshot) (*entity.TextPost, error) {
	post, err := entity.RestoreTextPost(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore post")
	}

	return post, nil
}
