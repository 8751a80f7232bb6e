package driven

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// SettingsStore persists the singleton typography configuration
type SettingsStore interface {
	// GetTypography retrieves the stored typography settings.
	// Returns domain.ErrNotFound when nothing has been saved yet.
	GetTypography(ctx context.Context) (*domain.TypographySettings, error)

	// SaveTypography persists typography settings
	SaveTypography(ctx context.Context, settings *domain.TypographySettings) error
}
