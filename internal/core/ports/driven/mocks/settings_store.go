package mocks

import (
	"context"
	"sync"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// MockSettingsStore is an in-memory SettingsStore for testing
type MockSettingsStore struct {
	mu         sync.RWMutex
	typography *domain.TypographySettings

	// Counts store reads, used to assert cache behaviour
	GetCalls int

	SaveErr error
}

// NewMockSettingsStore creates a new MockSettingsStore
func NewMockSettingsStore() *MockSettingsStore {
	return &MockSettingsStore{}
}

func (m *MockSettingsStore) GetTypography(ctx context.Context) (*domain.TypographySettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.typography == nil {
		return nil, domain.ErrNotFound
	}
	return m.typography, nil
}

func (m *MockSettingsStore) SaveTypography(ctx context.Context, settings *domain.TypographySettings) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.typography = settings
	return nil
}
