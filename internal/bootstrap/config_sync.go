package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/itemforge/internal/enchanting"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/repository"
	"github.com/osse101/itemforge/internal/validation"
)

// SyncItems loads, validates, and syncs the item templates at path to the database.
// Unchanged files are detected by hash and skipped.
func SyncItems(ctx context.Context, templateRepo repository.Template, path string) (*item.SyncResult, error) {
	slog.Info(LogMsgSyncingItems, "path", path)
	itemLoader := item.NewLoader()

	itemConfig, err := itemLoader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadItems, err)
	}

	if err := itemLoader.Validate(itemConfig); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidItems, err)
	}

	result, err := itemLoader.SyncToDatabase(ctx, itemConfig, templateRepo, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSyncItems, err)
	}

	if result.TemplatesInserted > 0 || result.TemplatesUpdated > 0 {
		slog.Info(LogMsgItemsSynced,
			"inserted", result.TemplatesInserted,
			"updated", result.TemplatesUpdated,
			"skipped", result.TemplatesSkipped)
	} else {
		slog.Info(LogMsgItemsUnchanged)
	}

	return result, nil
}

// LoadEnchantments loads the enchantment catalog at path. A missing file
// falls back to the built-in catalog; an invalid one is an error.
func LoadEnchantments(path string) (*enchanting.Catalog, error) {
	catalog, err := enchanting.LoadCatalog(path, validation.NewSchemaValidator())
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgEnchantmentsDefaulted, "path", path)
		return enchanting.DefaultCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadEnchantments, err)
	}

	slog.Info(LogMsgEnchantmentsLoaded,
		"path", path,
		"weapon", len(catalog.Keys(true)),
		"armor", len(catalog.Keys(false)))
	return catalog, nil
}
