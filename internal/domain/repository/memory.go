package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"message_board/internal/common"
	"message_board/internal/domain/model"

	"github.com/google/uuid"
)

// In-memory repository implementations backing isolated test instances.
// They mirror the Mongo behavior the handlers rely on: unique email,
// equality token lookup, newest-first listing and the id+author delete
// filter.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*model.User // keyed by id
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*model.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepository) FindByUserName(_ context.Context, userName string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.UserName == userName {
			found := *user
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryUserRepository) FindByAccessToken(_ context.Context, token string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if token == "" {
		return nil, common.ErrNotFound
	}
	for _, user := range r.users {
		if user.AccessToken == token {
			found := *user
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

type memoryMessageRepository struct {
	mu       sync.RWMutex
	messages []*model.Message
}

func NewMemoryMessageRepository() MessageRepository {
	return &memoryMessageRepository{}
}

func (r *memoryMessageRepository) Create(_ context.Context, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *memoryMessageRepository) FindRecent(_ context.Context, limit int64) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recent := make([]model.Message, 0, len(r.messages))
	for _, message := range r.messages {
		recent = append(recent, *message)
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if int64(len(recent)) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (r *memoryMessageRepository) FindOneAndUpdate(_ context.Context, id string, update MessageUpdate) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages {
		if message.ID == id {
			message.Message = update.Message
			message.ParentID = update.ParentID
			message.Author = update.Author
			updated := *message
			return &updated, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memoryMessageRepository) FindOneAndDelete(_ context.Context, id, author string) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, message := range r.messages {
		if message.ID == id && message.Author == author {
			deleted := *message
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, common.ErrNotFound
}
