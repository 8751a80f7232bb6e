package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ContentStore = (*ContentStore)(nil)

// ContentStore implements driven.ContentStore using PostgreSQL.
// All three content kinds share one table; every query is scoped by kind.
type ContentStore struct {
	db *DB
}

// NewContentStore creates a new ContentStore
func NewContentStore(db *DB) *ContentStore {
	return &ContentStore{db: db}
}

const contentColumns = `id, kind, template_type, tags, date,
	title, author, excerpt, whitepaper_url,
	heading, content, domain_id,
	image_url, rich_content, blocks,
	created_at, updated_at`

// Save creates or updates a record
func (s *ContentStore) Save(ctx context.Context, record *domain.ContentRecord) error {
	tags := record.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	blocks := record.Blocks
	if blocks == nil {
		blocks = domain.BlockList{}
	}
	blocksJSON, err := json.Marshal(blocks)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO content_records (` + contentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			template_type = EXCLUDED.template_type,
			tags = EXCLUDED.tags,
			date = EXCLUDED.date,
			title = EXCLUDED.title,
			author = EXCLUDED.author,
			excerpt = EXCLUDED.excerpt,
			whitepaper_url = EXCLUDED.whitepaper_url,
			heading = EXCLUDED.heading,
			content = EXCLUDED.content,
			domain_id = EXCLUDED.domain_id,
			image_url = EXCLUDED.image_url,
			rich_content = EXCLUDED.rich_content,
			blocks = EXCLUDED.blocks,
			updated_at = EXCLUDED.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		string(record.Kind),
		string(record.TemplateType),
		tagsJSON,
		record.Date,
		record.Title,
		record.Author,
		record.Excerpt,
		record.WhitepaperURL,
		record.Heading,
		record.Content,
		record.Domain,
		record.ImageURL,
		record.RichContent,
		blocksJSON,
		record.CreatedAt,
		record.UpdatedAt,
	)
	return err
}

// Get retrieves a record by kind and ID
func (s *ContentStore) Get(ctx context.Context, kind domain.Kind, id string) (*domain.ContentRecord, error) {
	query := `
		SELECT ` + contentColumns + `
		FROM content_records
		WHERE kind = $1 AND id = $2
	`

	return scanRecord(s.db.QueryRowContext(ctx, query, string(kind), id))
}

// ListAll retrieves all records of a kind, newest first
func (s *ContentStore) ListAll(ctx context.Context, kind domain.Kind) ([]*domain.ContentRecord, error) {
	query := `
		SELECT ` + contentColumns + `
		FROM content_records
		WHERE kind = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.ContentRecord
	for rows.Next() {
		record, err := scanRecordRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Delete deletes a record
func (s *ContentStore) Delete(ctx context.Context, kind domain.Kind, id string) error {
	query := `DELETE FROM content_records WHERE kind = $1 AND id = $2`
	result, err := s.db.ExecContext(ctx, query, string(kind), id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Count returns the record count for a kind
func (s *ContentStore) Count(ctx context.Context, kind domain.Kind) (int, error) {
	query := `SELECT COUNT(*) FROM content_records WHERE kind = $1`
	var count int
	err := s.db.QueryRowContext(ctx, query, string(kind)).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row *sql.Row) (*domain.ContentRecord, error) {
	record, err := scanRecordRow(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return record, err
}

func scanRecordRow(row rowScanner) (*domain.ContentRecord, error) {
	var record domain.ContentRecord
	var kind, templateType string
	var tagsJSON, blocksJSON []byte

	err := row.Scan(
		&record.ID,
		&kind,
		&templateType,
		&tagsJSON,
		&record.Date,
		&record.Title,
		&record.Author,
		&record.Excerpt,
		&record.WhitepaperURL,
		&record.Heading,
		&record.Content,
		&record.Domain,
		&record.ImageURL,
		&record.RichContent,
		&blocksJSON,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Kind = domain.Kind(kind)
	record.TemplateType = domain.TemplateType(templateType)

	if err := json.Unmarshal(tagsJSON, &record.Tags); err != nil {
		return nil, err
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}
	if err := json.Unmarshal(blocksJSON, &record.Blocks); err != nil {
		return nil, err
	}

	return &record, nil
}
