package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore implements driven.SettingsStore using PostgreSQL.
// Typography is a singleton: the table holds at most one row.
type SettingsStore struct {
	db *DB
}

// NewSettingsStore creates a new SettingsStore
func NewSettingsStore(db *DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// typographyStyles is the JSON shape stored in the styles column
type typographyStyles struct {
	Heading1 domain.TextStyle `json:"heading1"`
	Heading2 domain.TextStyle `json:"heading2"`
	Heading3 domain.TextStyle `json:"heading3"`
	Body     domain.TextStyle `json:"body"`
	Caption  domain.TextStyle `json:"caption"`
}

// GetTypography retrieves the stored typography settings.
// Returns domain.ErrNotFound when nothing has been saved yet; the caller
// decides whether defaults apply.
func (s *SettingsStore) GetTypography(ctx context.Context) (*domain.TypographySettings, error) {
	query := `SELECT styles, updated_at FROM typography_settings WHERE id = 1`

	var settings domain.TypographySettings
	var stylesJSON []byte

	err := s.db.QueryRowContext(ctx, query).Scan(&stylesJSON, &settings.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var styles typographyStyles
	if err := json.Unmarshal(stylesJSON, &styles); err != nil {
		return nil, err
	}

	settings.Heading1 = styles.Heading1
	settings.Heading2 = styles.Heading2
	settings.Heading3 = styles.Heading3
	settings.Body = styles.Body
	settings.Caption = styles.Caption

	return &settings, nil
}

// SaveTypography persists typography settings
func (s *SettingsStore) SaveTypography(ctx context.Context, settings *domain.TypographySettings) error {
	stylesJSON, err := json.Marshal(typographyStyles{
		Heading1: settings.Heading1,
		Heading2: settings.Heading2,
		Heading3: settings.Heading3,
		Body:     settings.Body,
		Caption:  settings.Caption,
	})
	if err != nil {
		return err
	}

	query := `
		INSERT INTO typography_settings (id, styles, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			styles = EXCLUDED.styles,
			updated_at = EXCLUDED.updated_at
	`

	_, err = s.db.ExecContext(ctx, query, stylesJSON, settings.UpdatedAt)
	return err
}
