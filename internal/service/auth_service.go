package service

import (
	"context"

	"qmstracker/internal/auth"
	"qmstracker/internal/errors"
	"qmstracker/internal/repository"
)

// AuthService issues and clears the persisted API token.
type AuthService interface {
	// IssueToken signs a token for the current user and stores it so
	// outgoing API calls can attach it as a bearer header.
	IssueToken(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
}

type authService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	jwt    *auth.JWTService
}

// NewAuthService builds an AuthService.
func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, jwt *auth.JWTService) AuthService {
	return &authService{users: users, tokens: tokens, jwt: jwt}
}

func (s *authService) IssueToken(ctx context.Context) (string, error) {
	user, err := s.users.Load(ctx)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.ErrUserNotFound
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", err
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

// Logout drops the stored token and clears the persisted user.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.tokens.Clear(ctx); err != nil {
		return err
	}
	return s.users.Clear(ctx)
}
