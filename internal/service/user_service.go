package service

import (
	"context"
	"time"

	"qmstracker/internal/errors"
	"qmstracker/internal/model"
	"qmstracker/internal/repository"
)

const (
	currentUserLatency   = 200 * time.Millisecond
	updateProfileLatency = 500 * time.Millisecond
	listUsersLatency     = 800 * time.Millisecond
	createUserLatency    = 600 * time.Millisecond
	deleteUserLatency    = 400 * time.Millisecond
)

// DeleteUserResult reports a user deletion.
type DeleteUserResult struct {
	Success       bool  `json:"success"`
	DeletedUserID int64 `json:"deletedUserId"`
}

// UserService manages the current profile plus the admin user directory.
type UserService interface {
	Current(ctx context.Context) (*model.User, error)
	UpdateProfile(ctx context.Context, updates *model.UserUpdate) (*model.User, error)
	// EnsureDefault seeds the hardcoded identity when no profile exists.
	EnsureDefault(ctx context.Context) (*model.User, error)
	Logout(ctx context.Context) error

	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) (*DeleteUserResult, error)
}

type userService struct {
	users         repository.UserRepository
	tokens        repository.TokenRepository
	latencyFactor float64
}

// NewUserService builds a UserService over the user and token repositories.
func NewUserService(users repository.UserRepository, tokens repository.TokenRepository, latencyFactor float64) UserService {
	return &userService{users: users, tokens: tokens, latencyFactor: latencyFactor}
}

func (s *userService) simulateLatency(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * s.latencyFactor)
	if scaled <= 0 {
		return nil
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Current returns the persisted profile. The startup path is expected
// to have seeded a default before this is called.
func (s *userService) Current(ctx context.Context) (*model.User, error) {
	user, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	if err := s.simulateLatency(ctx, currentUserLatency); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile shallow-merges the updates and refreshes updatedAt.
func (s *userService) UpdateProfile(ctx context.Context, updates *model.UserUpdate) (*model.User, error) {
	if err := s.simulateLatency(ctx, updateProfileLatency); err != nil {
		return nil, err
	}

	user, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	updates.Apply(user)
	user.UpdatedAt = time.Now()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) EnsureDefault(ctx context.Context) (*model.User, error) {
	user, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	seeded := model.DefaultUser()
	seeded.LastLogin = time.Now()
	if err := s.users.Save(ctx, &seeded); err != nil {
		return nil, err
	}
	return &seeded, nil
}

// Logout clears the persisted profile and any issued token.
func (s *userService) Logout(ctx context.Context) error {
	if err := s.users.Clear(ctx); err != nil {
		return err
	}
	return s.tokens.Clear(ctx)
}

// ListUsers returns the illustrative admin directory.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	if err := s.simulateLatency(ctx, listUsersLatency); err != nil {
		return nil, err
	}
	return directoryUsers(), nil
}

// CreateUser assigns an id and timestamps to a new directory user.
func (s *userService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.simulateLatency(ctx, createUserLatency); err != nil {
		return nil, err
	}

	now := time.Now()
	created := *user
	created.ID = now.UnixMilli()
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Role == "" {
		created.Role = model.RoleUser
	}
	return &created, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) (*DeleteUserResult, error) {
	if err := s.simulateLatency(ctx, deleteUserLatency); err != nil {
		return nil, err
	}
	return &DeleteUserResult{Success: true, DeletedUserID: id}, nil
}

func directoryUsers() []model.User {
	return []model.User{
		{
			ID:        1,
			Username:  "MFakheem",
			Email:     "mfakheem@company.com",
			Role:      model.RoleAdmin,
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			LastLogin: time.Date(2025, 7, 28, 21, 33, 4, 0, time.UTC),
		},
		{
			ID:        2,
			Username:  "jdoe",
			Email:     "john.doe@company.com",
			Role:      model.RoleUser,
			CreatedAt: time.Date(2024, 2, 20, 14, 30, 0, 0, time.UTC),
			LastLogin: time.Date(2025, 7, 27, 16, 45, 22, 0, time.UTC),
		},
		{
			ID:        3,
			Username:  "asmith",
			Email:     "alice.smith@company.com",
			Role:      model.RoleManager,
			CreatedAt: time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC),
			LastLogin: time.Date(2025, 7, 28, 8, 20, 15, 0, time.UTC),
		},
	}
}
