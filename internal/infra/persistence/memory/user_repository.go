// Package memory contains an in-process implementation of the repository ports.
// Aggregates are kept as snapshots so callers never share state with the store.
package memory

import (
	"context"
	"strings"
	"sync"

	"social/internal/domain/entity"
	"social/internal/domain/repository"

	"github.com/pkg/errors"
)

// userRepository implements the repository.UserRepository interface over a map.
type userRepository struct {
	mu    sync.RWMutex
	users map[entity.UserID]entity.UserSnapshot
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[entity.UserID]entity.UserSnapshot),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id entity.UserID) (*entity.User, error) {
	repo.mu.RLock()
	snapshot, ok := repo.users[id]
	repo.mu.RUnlock()

	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(snapshot)
}

// FindByEmail retrieves a single user by their email address, ignoring case.
func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, snapshot := range repo.users {
		if strings.EqualFold(snapshot.UserInfo.Email(), email) {
			return toUserDomain(snapshot)
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create stores a new user; both the id and the email must be unused.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.users[user.ID()]; exists {
		return repository.ErrUserAlreadyExists
	}
	for _, snapshot := range repo.users {
		if strings.EqualFold(snapshot.UserInfo.Email(), user.UserInfo().Email()) {
			return repository.ErrUserAlreadyExists
		}
	}
	repo.users[user.ID()] = user.Snapshot()

	return nil
}

// Update replaces the stored snapshot of an existing user.
func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.users[user.ID()]; !exists {
		return repository.ErrUserNotFound
	}
	repo.users[user.ID()] = user.Snapshot()

	return nil
}

func toUserDomain(snapshot entity.UserSnapshot) (*entity.User, error) {
	user, err := entity.RestoreUser(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore user")
	}

	return user, nil
}
