package driven

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// ContentStore handles content record persistence (PostgreSQL).
// One store serves all three kinds; every operation is scoped by kind.
type ContentStore interface {
	// Save creates or updates a record
	Save(ctx context.Context, record *domain.ContentRecord) error

	// Get retrieves a record by kind and ID
	Get(ctx context.Context, kind domain.Kind, id string) (*domain.ContentRecord, error)

	// ListAll retrieves all records of a kind ordered by created_at
	// descending (newest first). This ordering is load-bearing for every
	// public listing page.
	ListAll(ctx context.Context, kind domain.Kind) ([]*domain.ContentRecord, error)

	// Delete deletes a record
	Delete(ctx context.Context, kind domain.Kind, id string) error

	// Count returns the record count for a kind
	Count(ctx context.Context, kind domain.Kind) (int, error)
}
