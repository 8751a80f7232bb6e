package driving

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
)

// UploadResponse is returned for a completed upload
type UploadResponse struct {
	URL string `json:"url"`
}

// AssetService exposes uploads to the admin authoring flow. Uploads are
// blocking request/response; a failed required upload aborts the record
// submission on the caller's side.
type AssetService interface {
	// Upload stores the file at the external asset service and returns
	// its durable URL
	Upload(ctx context.Context, upload *domain.AssetUpload) (*UploadResponse, error)
}
