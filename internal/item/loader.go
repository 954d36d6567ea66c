package item

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/repository"
	"github.com/osse101/itemforge/internal/utils"
	"github.com/osse101/itemforge/internal/validation"
)

// ErrInvalidConfig marks a templates file that parsed but cannot be used
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the JSON templates file
type Config struct {
	Version   string                `json:"version"`
	Templates []domain.ItemTemplate `json:"templates"`
}

// Loader handles loading, validating and syncing template content
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	SyncToDatabase(ctx context.Context, config *Config, repo repository.Template, configPath string) (*SyncResult, error)
}

// SyncResult contains the result of syncing templates to the database
type SyncResult struct {
	TemplatesInserted int
	TemplatesUpdated  int
	TemplatesSkipped  int
}

type templateLoader struct {
	schemaValidator validation.SchemaValidator
	now             func() time.Time
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &templateLoader{
		schemaValidator: validation.NewSchemaValidator(),
		now:             time.Now,
	}
}

// Load reads a templates file, checks it against the schema and parses it
func (l *templateLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaItemTemplates); err != nil {
		return nil, fmt.Errorf("%w: schema validation failed for %s: %w", domain.ErrInvalidContent, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks rules the schema cannot express: unique keys, struct
// rules and cross-field consistency.
func (l *templateLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Templates) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoTemplatesDefined)
	}

	seen := make(map[string]bool, len(config.Templates))
	for i := range config.Templates {
		if err := validateTemplate(i, &config.Templates[i], seen); err != nil {
			return err
		}
	}
	return nil
}

func validateTemplate(index int, t *domain.ItemTemplate, seen map[string]bool) error {
	if t.TemplateKey == "" {
		return fmt.Errorf(ErrFmtTemplateAtIndexEmpty, ErrInvalidConfig, index)
	}
	if seen[t.TemplateKey] {
		return fmt.Errorf("%w: '%s'", domain.ErrDuplicateTemplate, t.TemplateKey)
	}
	seen[t.TemplateKey] = true

	if err := validation.Struct(t); err != nil {
		return fmt.Errorf(ErrFmtTemplateInvalid, ErrInvalidConfig, t.TemplateKey, err)
	}
	if t.BaseDamageMax > 0 && t.BaseDamageMin > t.BaseDamageMax {
		return fmt.Errorf(ErrFmtDamageRangeInverted, ErrInvalidConfig, t.TemplateKey, t.BaseDamageMin, t.BaseDamageMax)
	}
	if len(t.SocketTypes) > t.SocketCount {
		return fmt.Errorf(ErrFmtTooManySocketTypes, ErrInvalidConfig, t.TemplateKey, len(t.SocketTypes), t.SocketCount)
	}
	return nil
}

// SyncToDatabase upserts templates by key. It is a no-op when the file hash
// and mod time match the last recorded sync.
func (l *templateLoader) SyncToDatabase(ctx context.Context, config *Config, repo repository.Template, configPath string) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	fp, err := fingerprintFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckFileChangeFailed, err)
	}
	if !hasFileChanged(ctx, repo, fp) {
		log.Info(LogMsgConfigUnchanged, "path", configPath)
		return &SyncResult{}, nil
	}

	existing, err := repo.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingTemplatesFailed, err)
	}
	byKey := make(map[string]*domain.ItemTemplate, len(existing))
	for i := range existing {
		byKey[existing[i].TemplateKey] = &existing[i]
	}

	result := &SyncResult{}
	for i := range config.Templates {
		if err := syncOneTemplate(ctx, repo, &config.Templates[i], byKey, result); err != nil {
			return nil, err
		}
	}
	metrics.TemplatesSynced.Add(float64(result.TemplatesInserted + result.TemplatesUpdated))

	if err := repo.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   ConfigFileName,
		LastSyncTime: l.now(),
		FileHash:     fp.hash,
		FileModTime:  fp.modTime,
	}); err != nil {
		log.Warn(LogMsgUpdateMetadataFailed, "error", err)
	}

	log.Info(LogMsgSyncCompleted,
		"inserted", result.TemplatesInserted,
		"updated", result.TemplatesUpdated,
		"skipped", result.TemplatesSkipped)

	return result, nil
}

func syncOneTemplate(ctx context.Context, repo repository.Template, t *domain.ItemTemplate, byKey map[string]*domain.ItemTemplate, result *SyncResult) error {
	log := logger.FromContext(ctx)

	current, ok := byKey[t.TemplateKey]
	if !ok {
		id, err := repo.InsertTemplate(ctx, t)
		if err != nil {
			return fmt.Errorf(ErrMsgInsertTemplateFailed, t.TemplateKey, err)
		}
		t.ID = id
		result.TemplatesInserted++
		log.Info(LogMsgInsertedTemplate, "template_id", t.TemplateKey, "id", id)
		return nil
	}

	t.ID = current.ID
	same, err := sameDefinition(current, t)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateTemplateFailed, t.TemplateKey, err)
	}
	if same {
		result.TemplatesSkipped++
		return nil
	}
	if err := repo.UpdateTemplate(ctx, current.ID, t); err != nil {
		return fmt.Errorf(ErrMsgUpdateTemplateFailed, t.TemplateKey, err)
	}
	result.TemplatesUpdated++
	log.Info(LogMsgUpdatedTemplate, "template_id", t.TemplateKey)
	return nil
}

// sameDefinition compares the stored and authored templates by their
// canonical JSON form.
func sameDefinition(a, b *domain.ItemTemplate) (bool, error) {
	ja, err := canonicalJSON(a)
	if err != nil {
		return false, err
	}
	jb, err := canonicalJSON(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ja, jb), nil
}

// canonicalJSON round-trips t so content defaults are applied the same way
// on both sides of a comparison.
func canonicalJSON(t *domain.ItemTemplate) ([]byte, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var normalized domain.ItemTemplate
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, err
	}
	return json.Marshal(&normalized)
}

type fileFingerprint struct {
	hash    string
	modTime time.Time
}

func fingerprintFile(path string) (fileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileFingerprint{}, fmt.Errorf(ErrMsgStatConfigFileFailed, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileFingerprint{}, fmt.Errorf(ErrMsgReadForHashFailed, err)
	}
	return fileFingerprint{hash: utils.HashBytes(data), modTime: info.ModTime()}, nil
}

// hasFileChanged reports true when there is no usable sync record.
func hasFileChanged(ctx context.Context, repo repository.Template, fp fileFingerprint) bool {
	meta, err := repo.GetSyncMetadata(ctx, ConfigFileName)
	if err != nil || meta == nil {
		return true
	}
	return meta.FileHash != fp.hash || !meta.FileModTime.Equal(fp.modTime)
}
