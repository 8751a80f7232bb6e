package services

import (
	"context"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
	"github.com/freezing-point/fp-core/internal/core/ports/driving"
)

// Ensure assetService implements AssetService
var _ driving.AssetService = (*assetService)(nil)

// assetService implements the AssetService interface
type assetService struct {
	assetStore driven.AssetStore
}

// NewAssetService creates a new AssetService
func NewAssetService(assetStore driven.AssetStore) driving.AssetService {
	return &assetService{assetStore: assetStore}
}

// Upload stores the file at the external asset service and returns its
// durable URL
func (s *assetService) Upload(ctx context.Context, upload *domain.AssetUpload) (*driving.UploadResponse, error) {
	if upload == nil || upload.FileName == "" || upload.Body == nil {
		return nil, domain.ErrInvalidInput
	}

	url, err := s.assetStore.Upload(ctx, upload)
	if err != nil {
		return nil, err
	}
	return &driving.UploadResponse{URL: url}, nil
}
