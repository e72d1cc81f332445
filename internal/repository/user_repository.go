package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"qmstracker/internal/kv"
	"qmstracker/internal/model"
)

// UserRepository persists the single current-user profile.
type UserRepository interface {
	Load(ctx context.Context) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	Clear(ctx context.Context) error
}

type userRepository struct {
	store kv.Store
}

// NewUserRepository creates a user repository over the given store.
func NewUserRepository(store kv.Store) UserRepository {
	return &userRepository{store: store}
}

// Load reads the persisted user. Returns (nil, nil) when no user has
// been saved; a malformed value is logged, cleared and treated the same.
func (r *userRepository) Load(ctx context.Context) (*model.User, error) {
	data, err := r.store.Get(ctx, kv.KeyUser)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("corrupted %s, clearing: %v", kv.KeyUser, err)
		if derr := r.store.Delete(ctx, kv.KeyUser); derr != nil {
			return nil, fmt.Errorf("clear corrupted %s: %w", kv.KeyUser, derr)
		}
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kv.KeyUser, err)
	}
	return r.store.Set(ctx, kv.KeyUser, data)
}

func (r *userRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, kv.KeyUser)
}
