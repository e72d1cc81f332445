package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"qmstracker/internal/kv"
	"qmstracker/internal/model"
)

// ThemeRepository persists the display preferences.
type ThemeRepository interface {
	Load(ctx context.Context) (*model.Theme, error)
	Save(ctx context.Context, theme *model.Theme) error
	Clear(ctx context.Context) error
}

type themeRepository struct {
	store kv.Store
}

// NewThemeRepository creates a theme repository over the given store.
func NewThemeRepository(store kv.Store) ThemeRepository {
	return &themeRepository{store: store}
}

// Load reads the persisted theme. Returns (nil, nil) when none has been
// saved; a malformed value is logged, cleared and treated the same.
func (r *themeRepository) Load(ctx context.Context) (*model.Theme, error) {
	data, err := r.store.Get(ctx, kv.KeyTheme)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var theme model.Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		log.Printf("corrupted %s, clearing: %v", kv.KeyTheme, err)
		if derr := r.store.Delete(ctx, kv.KeyTheme); derr != nil {
			return nil, fmt.Errorf("clear corrupted %s: %w", kv.KeyTheme, derr)
		}
		return nil, nil
	}
	return &theme, nil
}

func (r *themeRepository) Save(ctx context.Context, theme *model.Theme) error {
	data, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kv.KeyTheme, err)
	}
	return r.store.Set(ctx, kv.KeyTheme, data)
}

func (r *themeRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, kv.KeyTheme)
}
