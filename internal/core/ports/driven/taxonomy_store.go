package driven

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// TaxonomyStore handles tag and domain persistence (PostgreSQL).
// Deletes do not cascade into content records; consumers tolerate
// dangling references.
type TaxonomyStore interface {
	// SaveTag creates or updates a tag
	SaveTag(ctx context.Context, tag *domain.Tag) error

	// GetTag retrieves a tag by ID
	GetTag(ctx context.Context, id string) (*domain.Tag, error)

	// ListTags retrieves all tags
	ListTags(ctx context.Context) ([]*domain.Tag, error)

	// DeleteTag deletes a tag
	DeleteTag(ctx context.Context, id string) error

	// SaveDomain creates or updates a domain
	SaveDomain(ctx context.Context, d *domain.Domain) error

	// GetDomain retrieves a domain by ID
	GetDomain(ctx context.Context, id string) (*domain.Domain, error)

	// ListDomains retrieves all domains
	ListDomains(ctx context.Context) ([]*domain.Domain, error)

	// DeleteDomain deletes a domain
	DeleteDomain(ctx context.Context, id string) error
}
