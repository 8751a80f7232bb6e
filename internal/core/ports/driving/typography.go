package driving

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// UpdateTypographyRequest replaces individual styles; omitted styles are
// left as they are
type UpdateTypographyRequest struct {
	Heading1 *domain.TextStyle `json:"heading1,omitempty"`
	Heading2 *domain.TextStyle `json:"heading2,omitempty"`
	Heading3 *domain.TextStyle `json:"heading3,omitempty"`
	Body     *domain.TextStyle `json:"body,omitempty"`
	Caption  *domain.TextStyle `json:"caption,omitempty"`
}

// TypographyService manages the singleton typography configuration.
// Reads are served from a process-scoped cache; the save path invalidates
// the cache so new values apply without a restart.
type TypographyService interface {
	// Get returns the active typography settings, falling back to the
	// hardcoded defaults when nothing has been saved
	Get(ctx context.Context) (*domain.TypographySettings, error)

	// Update persists new settings and invalidates the cache
	Update(ctx context.Context, req UpdateTypographyRequest) (*domain.TypographySettings, error)
}
