package services

import (
	"context"
	"errors"
	"time"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
	"github.com/freezing-point/fp-core/internal/core/ports/driving"
	"github.com/freezing-point/fp-core/internal/runtime"
)

// Ensure typographyService implements TypographyService
var _ driving.TypographyService = (*typographyService)(nil)

// typographyService implements the TypographyService interface.
// Reads go through the process-scoped cache in runtime.Services; the save
// path invalidates it so new values apply without a restart.
type typographyService struct {
	store    driven.SettingsStore
	services *runtime.Services
}

// NewTypographyService creates a new TypographyService
func NewTypographyService(store driven.SettingsStore, services *runtime.Services) driving.TypographyService {
	return &typographyService{store: store, services: services}
}

// Get returns the active typography settings. The cache is populated lazily
// on the first read; an unset store falls back to the hardcoded defaults.
func (s *typographyService) Get(ctx context.Context) (*domain.TypographySettings, error) {
	if cached := s.services.Typography(); cached != nil {
		return cached, nil
	}

	settings, err := s.store.GetTypography(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		settings = domain.DefaultTypography()
	} else if err != nil {
		return nil, err
	}

	s.services.SetTypography(settings)
	return settings, nil
}

// Update persists new settings and invalidates the cache
func (s *typographyService) Update(ctx context.Context, req driving.UpdateTypographyRequest) (*domain.TypographySettings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	// Copy before mutating; the cached value may be shared with readers.
	updated := *settings
	if req.Heading1 != nil {
		updated.Heading1 = *req.Heading1
	}
	if req.Heading2 != nil {
		updated.Heading2 = *req.Heading2
	}
	if req.Heading3 != nil {
		updated.Heading3 = *req.Heading3
	}
	if req.Body != nil {
		updated.Body = *req.Body
	}
	if req.Caption != nil {
		updated.Caption = *req.Caption
	}
	updated.UpdatedAt = time.Now()

	if err := s.store.SaveTypography(ctx, &updated); err != nil {
		return nil, err
	}

	s.services.InvalidateTypography()
	return &updated, nil
}
