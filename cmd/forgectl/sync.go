package main

import (
	"context"

	"github.com/osse101/itemforge/internal/bootstrap"
)

// SyncCommand syncs item templates from the content file into the database
type SyncCommand struct{}

func (c *SyncCommand) Name() string {
	return "sync"
}

func (c *SyncCommand) Description() string {
	return "Sync item templates from ITEMS_CONFIG_PATH"
}

func (c *SyncCommand) Run(_ []string) error {
	return withApp(func(ctx context.Context, app *bootstrap.App) error {
		result, err := app.SyncContent(ctx)
		if err != nil {
			return err
		}
		PrintSuccess("Templates: %d inserted, %d updated, %d unchanged",
			result.TemplatesInserted, result.TemplatesUpdated, result.TemplatesSkipped)
		return nil
	})
}
