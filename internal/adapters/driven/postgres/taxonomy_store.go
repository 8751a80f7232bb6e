package postgres

import (
	"context"
	"database/sql"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TaxonomyStore = (*TaxonomyStore)(nil)

// TaxonomyStore implements driven.TaxonomyStore using PostgreSQL.
// Deleting a tag or domain does not touch content_records; dangling ids
// are left for renderers to skip.
type TaxonomyStore struct {
	db *DB
}

// NewTaxonomyStore creates a new TaxonomyStore
func NewTaxonomyStore(db *DB) *TaxonomyStore {
	return &TaxonomyStore{db: db}
}

// SaveTag creates or updates a tag
func (s *TaxonomyStore) SaveTag(ctx context.Context, tag *domain.Tag) error {
	query := `
		INSERT INTO tags (id, name, color, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			color = EXCLUDED.color,
			image_url = EXCLUDED.image_url,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		tag.ID,
		tag.Name,
		tag.Color,
		tag.ImageURL,
		tag.CreatedAt,
		tag.UpdatedAt,
	)
	return err
}

// GetTag retrieves a tag by ID
func (s *TaxonomyStore) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	query := `
		SELECT id, name, color, image_url, created_at, updated_at
		FROM tags
		WHERE id = $1
	`

	var tag domain.Tag
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tag.ID,
		&tag.Name,
		&tag.Color,
		&tag.ImageURL,
		&tag.CreatedAt,
		&tag.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// ListTags retrieves all tags
func (s *TaxonomyStore) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	query := `
		SELECT id, name, color, image_url, created_at, updated_at
		FROM tags
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []*domain.Tag
	for rows.Next() {
		var tag domain.Tag
		err := rows.Scan(
			&tag.ID,
			&tag.Name,
			&tag.Color,
			&tag.ImageURL,
			&tag.CreatedAt,
			&tag.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

// DeleteTag deletes a tag
func (s *TaxonomyStore) DeleteTag(ctx context.Context, id string) error {
	query := `DELETE FROM tags WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
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

// SaveDomain creates or updates a domain
func (s *TaxonomyStore) SaveDomain(ctx context.Context, d *domain.Domain) error {
	query := `
		INSERT INTO domains (id, name, description, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			color = EXCLUDED.color,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.Description,
		d.Color,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

// GetDomain retrieves a domain by ID with its live post count
func (s *TaxonomyStore) GetDomain(ctx context.Context, id string) (*domain.Domain, error) {
	query := `
		SELECT d.id, d.name, d.description, d.color, d.created_at, d.updated_at,
			   (SELECT COUNT(*) FROM content_records c WHERE c.domain_id = d.id) AS post_count
		FROM domains d
		WHERE d.id = $1
	`

	var d domain.Domain
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.Color,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.PostCount,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// ListDomains retrieves all domains with live post counts
func (s *TaxonomyStore) ListDomains(ctx context.Context) ([]*domain.Domain, error) {
	query := `
		SELECT d.id, d.name, d.description, d.color, d.created_at, d.updated_at,
			   (SELECT COUNT(*) FROM content_records c WHERE c.domain_id = d.id) AS post_count
		FROM domains d
		ORDER BY d.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []*domain.Domain
	for rows.Next() {
		var d domain.Domain
		err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.Description,
			&d.Color,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.PostCount,
		)
		if err != nil {
			return nil, err
		}
		domains = append(domains, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domains, nil
}

// DeleteDomain deletes a domain
func (s *TaxonomyStore) DeleteDomain(ctx context.Context, id string) error {
	query := `DELETE FROM domains WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, id)
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
