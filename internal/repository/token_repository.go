package repository

import (
	"context"

	"qmstracker/internal/kv"
)

// TokenRepository persists the opaque bearer token attached to
// outgoing API calls.
type TokenRepository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type tokenRepository struct {
	store kv.Store
}

// NewTokenRepository creates a token repository over the given store.
func NewTokenRepository(store kv.Store) TokenRepository {
	return &tokenRepository{store: store}
}

// Load returns the stored token, or "" when none has been issued.
func (r *tokenRepository) Load(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, kv.KeyToken)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *tokenRepository) Save(ctx context.Context, token string) error {
	return r.store.Set(ctx, kv.KeyToken, []byte(token))
}

func (r *tokenRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, kv.KeyToken)
}
