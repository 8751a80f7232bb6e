package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// MockAssetStore is an in-memory AssetStore for testing
type MockAssetStore struct {
	mu        sync.Mutex
	uploads   int
	Deleted   []string
	BaseURL   string
	UploadErr error
	DeleteErr error
}

// NewMockAssetStore creates a new MockAssetStore
func NewMockAssetStore() *MockAssetStore {
	return &MockAssetStore{BaseURL: "https://cdn.test"}
}

func (m *MockAssetStore) Upload(ctx context.Context, upload *domain.AssetUpload) (string, error) {
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads++
	return fmt.Sprintf("%s/%s/%d-%s", m.BaseURL, upload.Folder, m.uploads, upload.FileName), nil
}

func (m *MockAssetStore) Delete(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, url)
	return nil
}
