package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
	"github.com/freezing-point/fp-core/internal/core/ports/driving"
)

// Ensure taxonomyService implements TaxonomyService
var _ driving.TaxonomyService = (*taxonomyService)(nil)

// taxonomyService implements the TaxonomyService interface
type taxonomyService struct {
	store  driven.TaxonomyStore
	logger *slog.Logger
}

// NewTaxonomyService creates a new TaxonomyService
func NewTaxonomyService(store driven.TaxonomyStore, logger *slog.Logger) driving.TaxonomyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taxonomyService{store: store, logger: logger}
}

func (s *taxonomyService) CreateTag(ctx context.Context, req driving.CreateTagRequest) (*domain.Tag, error) {
	now := time.Now()
	tag := &domain.Tag{
		ID:        domain.GenerateID(),
		Name:      req.Name,
		Color:     req.Color,
		ImageURL:  req.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tag.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.SaveTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *taxonomyService) UpdateTag(ctx context.Context, id string, req driving.UpdateTagRequest) (*domain.Tag, error) {
	tag, err := s.store.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}
	if req.ImageURL != nil {
		tag.ImageURL = *req.ImageURL
	}

	if err := tag.Validate(); err != nil {
		return nil, err
	}

	tag.UpdatedAt = time.Now()
	if err := s.store.SaveTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes a tag. Content records keep the dangling id; renderers
// skip ids with no matching tag.
func (s *taxonomyService) DeleteTag(ctx context.Context, id string) error {
	return s.store.DeleteTag(ctx, id)
}

func (s *taxonomyService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.store.ListTags(ctx)
}

func (s *taxonomyService) CreateDomain(ctx context.Context, req driving.CreateDomainRequest) (*domain.Domain, error) {
	now := time.Now()
	d := &domain.Domain{
		ID:          domain.GenerateID(),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		PostCount:   0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.SaveDomain(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *taxonomyService) UpdateDomain(ctx context.Context, id string, req driving.UpdateDomainRequest) (*domain.Domain, error) {
	d, err := s.store.GetDomain(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.Color != nil {
		d.Color = *req.Color
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	d.UpdatedAt = time.Now()
	if err := s.store.SaveDomain(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *taxonomyService) DeleteDomain(ctx context.Context, id string) error {
	return s.store.DeleteDomain(ctx, id)
}

func (s *taxonomyService) ListDomains(ctx context.Context) ([]*domain.Domain, error) {
	return s.store.ListDomains(ctx)
}

// Load fetches the tag and domain sets for rendering. A failed fetch
// degrades to an empty set so pages still render.
func (s *taxonomyService) Load(ctx context.Context) (*domain.Taxonomy, error) {
	tax := &domain.Taxonomy{}

	tags, err := s.store.ListTags(ctx)
	if err != nil {
		s.logger.Warn("tag listing failed, rendering without tags", "error", err)
	} else {
		tax.Tags = tags
	}

	domains, err := s.store.ListDomains(ctx)
	if err != nil {
		s.logger.Warn("domain listing failed, rendering without domains", "error", err)
	} else {
		tax.Domains = domains
	}

	return tax, nil
}
