package mocks

import (
	"context"
	"sync"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// MockTaxonomyStore is an in-memory TaxonomyStore for testing
type MockTaxonomyStore struct {
	mu      sync.RWMutex
	tags    map[string]*domain.Tag
	domains map[string]*domain.Domain

	// Optional error injection
	ListTagsErr    error
	ListDomainsErr error
}

// NewMockTaxonomyStore creates a new MockTaxonomyStore
func NewMockTaxonomyStore() *MockTaxonomyStore {
	return &MockTaxonomyStore{
		tags:    make(map[string]*domain.Tag),
		domains: make(map[string]*domain.Domain),
	}
}

func (m *MockTaxonomyStore) SaveTag(ctx context.Context, tag *domain.Tag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tags[tag.ID] = tag
	return nil
}

func (m *MockTaxonomyStore) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tag, ok := m.tags[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return tag, nil
}

func (m *MockTaxonomyStore) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	if m.ListTagsErr != nil {
		return nil, m.ListTagsErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Tag, 0, len(m.tags))
	for _, t := range m.tags {
		out = append(out, t)
	}
	return out, nil
}

func (m *MockTaxonomyStore) DeleteTag(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tags[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.tags, id)
	return nil
}

func (m *MockTaxonomyStore) SaveDomain(ctx context.Context, d *domain.Domain) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.domains[d.ID] = d
	return nil
}

func (m *MockTaxonomyStore) GetDomain(ctx context.Context, id string) (*domain.Domain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.domains[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (m *MockTaxonomyStore) ListDomains(ctx context.Context) ([]*domain.Domain, error) {
	if m.ListDomainsErr != nil {
		return nil, m.ListDomainsErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Domain, 0, len(m.domains))
	for _, d := range m.domains {
		out = append(out, d)
	}
	return out, nil
}

func (m *MockTaxonomyStore) DeleteDomain(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.domains[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.domains, id)
	return nil
}
