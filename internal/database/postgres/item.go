package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/repository"
)

// ErrSyncMetadataNotFound is returned before the first sync of a content file
var ErrSyncMetadataNotFound = errors.New(ErrMsgSyncMetadataNotFound)

// TemplateRepository implements repository.Template for PostgreSQL.
// The full template is stored in the definition column; the indexed columns
// duplicate the fields used for lookup.
type TemplateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

var _ repository.Template = (*TemplateRepository)(nil)

const templateSelect = `SELECT id, definition FROM item_templates`

func scanTemplate(row pgx.Row) (*domain.ItemTemplate, error) {
	var (
		id         int
		definition []byte
	)
	if err := row.Scan(&id, &definition); err != nil {
		return nil, err
	}
	var t domain.ItemTemplate
	if err := json.Unmarshal(definition, &t); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeTemplate, err)
	}
	t.ID = id
	return &t, nil
}

// ListTemplates retrieves every template ordered by id
func (r *TemplateRepository) ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error) {
	rows, err := r.pool.Query(ctx, templateSelect+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
	}
	defer rows.Close()

	var templates []domain.ItemTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTemplates, err)
	}
	return templates, nil
}

// GetTemplateByID retrieves a template by its numeric id
func (r *TemplateRepository) GetTemplateByID(ctx context.Context, id int) (*domain.ItemTemplate, error) {
	t, err := scanTemplate(r.pool.QueryRow(ctx, templateSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrTemplateNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTemplate, err)
	}
	return t, nil
}

// GetTemplateByKey retrieves a template by its template_id
func (r *TemplateRepository) GetTemplateByKey(ctx context.Context, key string) (*domain.ItemTemplate, error) {
	t, err := scanTemplate(r.pool.QueryRow(ctx, templateSelect+` WHERE template_key = $1`, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, key)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTemplate, err)
	}
	return t, nil
}

// InsertTemplate inserts a new template and returns its id
func (r *TemplateRepository) InsertTemplate(ctx context.Context, t *domain.ItemTemplate) (int, error) {
	definition, err := json.Marshal(t)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertTemplate, err)
	}

	var id int
	err = r.pool.QueryRow(ctx, `
		INSERT INTO item_templates (template_key, name, category, item_type, material, quality_tier, definition)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		t.TemplateKey, t.Name, t.Category, t.ItemType, strToText(t.Material), strToText(t.QualityTier), definition,
	).Scan(&id)
	if err != nil {
		if isPgError(err, PgErrorCodeUniqueViolation) {
			return 0, fmt.Errorf("%w: %s", domain.ErrDuplicateTemplate, t.TemplateKey)
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertTemplate, err)
	}
	return id, nil
}

// UpdateTemplate replaces the stored definition of template id
func (r *TemplateRepository) UpdateTemplate(ctx context.Context, id int, t *domain.ItemTemplate) error {
	definition, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTemplate, err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE item_templates
		SET template_key = $2, name = $3, category = $4, item_type = $5, material = $6,
		    quality_tier = $7, definition = $8, updated_at = NOW()
		WHERE id = $1`,
		id, t.TemplateKey, t.Name, t.Category, t.ItemType, strToText(t.Material), strToText(t.QualityTier), definition,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTemplate, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrTemplateNotFound, id)
	}
	return nil
}

// GetSyncMetadata retrieves sync metadata for a config file
func (r *TemplateRepository) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	meta := domain.SyncMetadata{ConfigName: configName}
	err := r.pool.QueryRow(ctx, `
		SELECT file_hash, file_mod_time, last_synced_at
		FROM sync_metadata
		WHERE config_name = $1`, configName,
	).Scan(&meta.FileHash, &meta.FileModTime, &meta.LastSyncTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSyncMetadataNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSyncMeta, err)
	}
	return &meta, nil
}

// UpsertSyncMetadata records the last sync of a config file
func (r *TemplateRepository) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, file_hash, file_mod_time, last_synced_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (config_name) DO UPDATE
		SET file_hash = EXCLUDED.file_hash,
		    file_mod_time = EXCLUDED.file_mod_time,
		    last_synced_at = EXCLUDED.last_synced_at`,
		metadata.ConfigName, metadata.FileHash, metadata.FileModTime, metadata.LastSyncTime,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSyncMeta, err)
	}
	return nil
}
