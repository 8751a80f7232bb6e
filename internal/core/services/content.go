package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
	"github.com/freezing-point/fp-core/internal/core/ports/driving"
)

// Ensure contentService implements ContentService
var _ driving.ContentService = (*contentService)(nil)

const (
	// Bounded retry for idempotent reads. Writes are never retried
	// automatically, to avoid duplicate records.
	readAttempts     = 3
	readRetryBackoff = 100 * time.Millisecond
)

// contentService implements the ContentService interface
type contentService struct {
	contentStore driven.ContentStore
	assetStore   driven.AssetStore
	taskQueue    driven.TaskQueue // optional; inline cleanup when nil
	logger       *slog.Logger
}

// NewContentService creates a new ContentService. taskQueue may be nil, in
// which case asset cleanup on delete runs inline instead of in the worker.
func NewContentService(
	contentStore driven.ContentStore,
	assetStore driven.AssetStore,
	taskQueue driven.TaskQueue,
	logger *slog.Logger,
) driving.ContentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &contentService{
		contentStore: contentStore,
		assetStore:   assetStore,
		taskQueue:    taskQueue,
		logger:       logger,
	}
}

// Create assigns an id and timestamps and persists a new record.
// The template type is fixed here for the record's lifetime.
func (s *contentService) Create(ctx context.Context, req driving.CreateContentRequest) (*domain.ContentRecord, error) {
	if !req.TemplateType.IsValid() {
		return nil, domain.ErrInvalidTemplate
	}

	now := time.Now()
	record := &domain.ContentRecord{
		ID:            domain.GenerateID(),
		Kind:          req.Kind,
		TemplateType:  req.TemplateType,
		Tags:          req.Tags,
		Date:          req.Date,
		Title:         req.Title,
		Author:        req.Author,
		Excerpt:       req.Excerpt,
		WhitepaperURL: req.WhitepaperURL,
		Heading:       req.Heading,
		Content:       req.Content,
		Domain:        req.Domain,
		ImageURL:      req.ImageURL,
		RichContent:   req.RichContent,
		Blocks:        req.Blocks,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.contentStore.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Get retrieves a record by kind and id
func (s *contentService) Get(ctx context.Context, kind domain.Kind, id string) (*domain.ContentRecord, error) {
	if !kind.IsValid() {
		return nil, domain.ErrInvalidKind
	}
	return s.contentStore.Get(ctx, kind, id)
}

// Update merges partial fields into an existing record. Kind, id, template
// type, and creation time never change.
func (s *contentService) Update(ctx context.Context, kind domain.Kind, id string, req driving.UpdateContentRequest) (*domain.ContentRecord, error) {
	record, err := s.contentStore.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if req.Tags != nil {
		record.Tags = *req.Tags
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.Author != nil {
		record.Author = *req.Author
	}
	if req.Excerpt != nil {
		record.Excerpt = *req.Excerpt
	}
	if req.WhitepaperURL != nil {
		record.WhitepaperURL = *req.WhitepaperURL
	}
	if req.Heading != nil {
		record.Heading = *req.Heading
	}
	if req.Content != nil {
		record.Content = *req.Content
	}
	if req.Domain != nil {
		record.Domain = *req.Domain
	}
	if req.ImageURL != nil {
		record.ImageURL = *req.ImageURL
	}
	if req.RichContent != nil {
		record.RichContent = *req.RichContent
	}
	if req.Blocks != nil {
		record.Blocks = *req.Blocks
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	record.UpdatedAt = time.Now()

	if err := s.contentStore.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes the record, then best-effort removes its uploaded assets.
// Cleanup failures are logged and reported in the response, never returned
// as a delete failure.
func (s *contentService) Delete(ctx context.Context, kind domain.Kind, id string) (*driving.DeleteContentResponse, error) {
	record, err := s.contentStore.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if err := s.contentStore.Delete(ctx, kind, id); err != nil {
		return nil, err
	}

	resp := &driving.DeleteContentResponse{Deleted: true}
	resp.Cleanup = s.cleanupAssets(ctx, record.AssetURLs())
	return resp, nil
}

// cleanupAssets hands asset deletions to the background queue when one is
// configured, otherwise deletes inline.
func (s *contentService) cleanupAssets(ctx context.Context, urls []string) domain.CleanupResult {
	result := domain.CleanupResult{Attempted: len(urls)}

	for _, url := range urls {
		var err error
		if s.taskQueue != nil {
			err = s.taskQueue.Enqueue(ctx, domain.NewAssetCleanupTask(url))
		} else {
			err = s.assetStore.Delete(ctx, url)
		}
		if err != nil {
			s.logger.Warn("asset cleanup failed",
				"url", url,
				"error", err)
			result.RecordFailure(err)
		}
	}
	return result
}

// ListAll returns all records of a kind, newest first. Reads are idempotent
// and retried transiently.
func (s *contentService) ListAll(ctx context.Context, kind domain.Kind) ([]*domain.ContentRecord, error) {
	if !kind.IsValid() {
		return nil, domain.ErrInvalidKind
	}

	var records []*domain.ContentRecord
	var err error
	for attempt := 0; attempt < readAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(readRetryBackoff * time.Duration(attempt)):
			}
		}
		records, err = s.contentStore.ListAll(ctx, kind)
		if err == nil {
			return records, nil
		}
	}
	return nil, err
}

// ListLatest returns at most limit records of a kind, newest first
func (s *contentService) ListLatest(ctx context.Context, kind domain.Kind, limit int) ([]*domain.ContentRecord, error) {
	records, err := s.ListAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// ValidateBlocks returns advisory problems for a block list
func (s *contentService) ValidateBlocks(blocks domain.BlockList) []string {
	return blocks.Validate()
}
