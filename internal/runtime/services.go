package runtime

import (
	"sync"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// Services holds process-scoped mutable state shared across requests.
// Today that is only the typography cache: populated lazily on first read,
// invalidated explicitly by the save path. Thread-safe for concurrent access.
type Services struct {
	mu sync.RWMutex

	typography *domain.TypographySettings
}

// NewServices creates a new Services registry
func NewServices() *Services {
	return &Services{}
}

// Typography returns the cached typography settings, or nil when the cache
// is cold
func (s *Services) Typography() *domain.TypographySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.typography
}

// SetTypography populates the typography cache
func (s *Services) SetTypography(settings *domain.TypographySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.typography = settings
}

// InvalidateTypography empties the typography cache. Called by the single
// write path after a save; the next read repopulates from the store.
func (s *Services) InvalidateTypography() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.typography = nil
}
