package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven/mocks"
)

func TestAssetService_Upload(t *testing.T) {
	store := mocks.NewMockAssetStore()
	svc := NewAssetService(store)

	resp, err := svc.Upload(context.Background(), &domain.AssetUpload{
		FileName:    "hero.png",
		ContentType: "image/png",
		Folder:      "posts",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.URL)
}

func TestAssetService_Upload_RequiresFile(t *testing.T) {
	svc := NewAssetService(mocks.NewMockAssetStore())

	_, err := svc.Upload(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Upload(context.Background(), &domain.AssetUpload{ContentType: "image/png"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Upload(context.Background(), &domain.AssetUpload{FileName: "hero.png"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssetService_Upload_PropagatesStoreErrors(t *testing.T) {
	store := mocks.NewMockAssetStore()
	store.UploadErr = domain.ErrUploadRejected
	svc := NewAssetService(store)

	_, err := svc.Upload(context.Background(), &domain.AssetUpload{
		FileName:    "broken.png",
		ContentType: "image/png",
		Body:        strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, domain.ErrUploadRejected)
}
