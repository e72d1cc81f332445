package service

import (
	"context"

	"qmstracker/internal/model"
	"qmstracker/internal/repository"
)

// ThemeService manages the persisted display preferences.
type ThemeService interface {
	Get(ctx context.Context) (*model.Theme, error)
	Update(ctx context.Context, updates *model.ThemeUpdate) (*model.Theme, error)
	Reset(ctx context.Context) (*model.Theme, error)
}

type themeService struct {
	repo repository.ThemeRepository
}

// NewThemeService creates a theme service over the theme repository.
func NewThemeService(repo repository.ThemeRepository) ThemeService {
	return &themeService{repo: repo}
}

// Get returns the saved preferences, or the defaults when none exist.
func (s *themeService) Get(ctx context.Context) (*model.Theme, error) {
	theme, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		def := model.DefaultTheme()
		return &def, nil
	}
	return theme, nil
}

// Update merges the change into the current preferences and persists
// the result. Only mode, primaryColor and fontSize participate in the
// merge; secondaryColor always carries the current value.
func (s *themeService) Update(ctx context.Context, updates *model.ThemeUpdate) (*model.Theme, error) {
	theme, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	updates.Apply(theme)
	if err := s.repo.Save(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// Reset restores and persists the default preferences.
func (s *themeService) Reset(ctx context.Context) (*model.Theme, error) {
	def := model.DefaultTheme()
	if err := s.repo.Save(ctx, &def); err != nil {
		return nil, err
	}
	return &def, nil
}
