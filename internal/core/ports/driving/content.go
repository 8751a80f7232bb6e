package driving

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// CreateContentRequest carries the authoring submission for a new record.
// The template type is chosen once here and is immutable afterwards.
type CreateContentRequest struct {
	Kind         domain.Kind         `json:"kind"`
	TemplateType domain.TemplateType `json:"templateType"`
	Tags         []string            `json:"tags"`
	Date         string              `json:"date"`

	Title         string `json:"title,omitempty"`
	Author        string `json:"author,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	WhitepaperURL string `json:"whitepaperUrl,omitempty"`

	Heading string `json:"heading,omitempty"`
	Content string `json:"content,omitempty"`
	Domain  string `json:"domain,omitempty"`

	ImageURL    string           `json:"imageUrl,omitempty"`
	RichContent string           `json:"richContent,omitempty"`
	Blocks      domain.BlockList `json:"blocks,omitempty"`
}

// UpdateContentRequest carries partial edits to an existing record.
// Template type is not part of the request; it cannot change after creation.
type UpdateContentRequest struct {
	Tags *[]string `json:"tags,omitempty"`
	Date *string   `json:"date,omitempty"`

	Title         *string `json:"title,omitempty"`
	Author        *string `json:"author,omitempty"`
	Excerpt       *string `json:"excerpt,omitempty"`
	WhitepaperURL *string `json:"whitepaperUrl,omitempty"`

	Heading *string `json:"heading,omitempty"`
	Content *string `json:"content,omitempty"`
	Domain  *string `json:"domain,omitempty"`

	ImageURL    *string           `json:"imageUrl,omitempty"`
	RichContent *string           `json:"richContent,omitempty"`
	Blocks      *domain.BlockList `json:"blocks,omitempty"`
}

// DeleteContentResponse reports the delete outcome. The record delete either
// succeeded or errored; asset cleanup is best-effort and reported separately.
type DeleteContentResponse struct {
	Deleted bool                 `json:"deleted"`
	Cleanup domain.CleanupResult `json:"cleanup"`
}

// ContentService manages content records of all three kinds
type ContentService interface {
	// Create assigns an id and timestamps and persists a new record
	Create(ctx context.Context, req CreateContentRequest) (*domain.ContentRecord, error)

	// Get retrieves a record by kind and id
	Get(ctx context.Context, kind domain.Kind, id string) (*domain.ContentRecord, error)

	// Update merges partial fields into an existing record
	Update(ctx context.Context, kind domain.Kind, id string, req UpdateContentRequest) (*domain.ContentRecord, error)

	// Delete removes the record and best-effort removes its uploaded
	// assets. Asset cleanup failures are logged, never returned.
	Delete(ctx context.Context, kind domain.Kind, id string) (*DeleteContentResponse, error)

	// ListAll returns all records of a kind, newest first
	ListAll(ctx context.Context, kind domain.Kind) ([]*domain.ContentRecord, error)

	// ListLatest returns at most limit records of a kind, newest first
	ListLatest(ctx context.Context, kind domain.Kind, limit int) ([]*domain.ContentRecord, error)

	// ValidateBlocks returns advisory problems for a block list; it never
	// blocks submission
	ValidateBlocks(blocks domain.BlockList) []string
}
