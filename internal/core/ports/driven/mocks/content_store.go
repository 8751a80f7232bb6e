package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// MockContentStore is an in-memory ContentStore for testing
type MockContentStore struct {
	mu      sync.RWMutex
	records map[domain.Kind]map[string]*domain.ContentRecord

	// Optional error injection
	SaveErr   error
	DeleteErr error
	ListErr   error
}

// NewMockContentStore creates a new MockContentStore
func NewMockContentStore() *MockContentStore {
	return &MockContentStore{
		records: make(map[domain.Kind]map[string]*domain.ContentRecord),
	}
}

func (m *MockContentStore) Save(ctx context.Context, record *domain.ContentRecord) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.records[record.Kind] == nil {
		m.records[record.Kind] = make(map[string]*domain.ContentRecord)
	}
	m.records[record.Kind][record.ID] = record
	return nil
}

func (m *MockContentStore) Get(ctx context.Context, kind domain.Kind, id string) (*domain.ContentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[kind][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockContentStore) ListAll(ctx context.Context, kind domain.Kind) ([]*domain.ContentRecord, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.ContentRecord, 0, len(m.records[kind]))
	for _, r := range m.records[kind] {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MockContentStore) Delete(ctx context.Context, kind domain.Kind, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[kind][id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records[kind], id)
	return nil
}

func (m *MockContentStore) Count(ctx context.Context, kind domain.Kind) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records[kind]), nil
}
