package driving

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// CreateTagRequest carries fields for a new tag
type CreateTagRequest struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	ImageURL string `json:"image_url,omitempty"`
}

// UpdateTagRequest carries partial tag edits
type UpdateTagRequest struct {
	Name     *string `json:"name,omitempty"`
	Color    *string `json:"color,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// CreateDomainRequest carries fields for a new domain
type CreateDomainRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// UpdateDomainRequest carries partial domain edits
type UpdateDomainRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// TaxonomyService manages tags and domains
type TaxonomyService interface {
	CreateTag(ctx context.Context, req CreateTagRequest) (*domain.Tag, error)
	UpdateTag(ctx context.Context, id string, req UpdateTagRequest) (*domain.Tag, error)
	// DeleteTag removes a tag. Content records keep the dangling id.
	DeleteTag(ctx context.Context, id string) error
	ListTags(ctx context.Context) ([]*domain.Tag, error)

	CreateDomain(ctx context.Context, req CreateDomainRequest) (*domain.Domain, error)
	UpdateDomain(ctx context.Context, id string, req UpdateDomainRequest) (*domain.Domain, error)
	DeleteDomain(ctx context.Context, id string) error
	ListDomains(ctx context.Context) ([]*domain.Domain, error)

	// Load fetches both tag and domain sets for rendering. Either fetch
	// failing degrades to an empty set rather than an error.
	Load(ctx context.Context) (*domain.Taxonomy, error)
}
