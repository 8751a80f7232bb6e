package driven

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// AssetStore turns a local file into a durable URL at the external asset
// service (image CDN). The implementation infers the resource category
// (image, document, video) from the content type.
type AssetStore interface {
	// Upload stores a file and returns its durable URL.
	// folder is a destination hint; implementations may ignore it.
	Upload(ctx context.Context, upload *domain.AssetUpload) (string, error)

	// Delete removes an uploaded asset by URL. Best-effort: callers log
	// failures and never surface them as their own failure.
	Delete(ctx context.Context, url string) error
}
