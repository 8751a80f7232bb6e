package driving

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// RenderService maps content records to displayable render units
type RenderService interface {
	// Render produces the render tree for one stored record
	Render(ctx context.Context, kind domain.Kind, id string) (*domain.RenderedRecord, error)

	// RenderRecord is the pure mapping used by Render and by authoring
	// previews: no store access, the caller supplies everything.
	RenderRecord(record *domain.ContentRecord, taxonomy *domain.Taxonomy, typography *domain.TypographySettings) *domain.RenderedRecord
}
