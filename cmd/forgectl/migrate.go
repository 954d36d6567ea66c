package main

import (
	"context"
	"fmt"

	"github.com/osse101/itemforge/internal/database"
)

// MigrateCommand applies the embedded schema migrations
type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply database migrations (up, version)"
}

func (c *MigrateCommand) Run(args []string) error {
	subcmd := "up"
	if len(args) > 0 {
		subcmd = args[0]
	}

	cfg, closer, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()
	dsn := cfg.GetDBConnString()

	switch subcmd {
	case "up":
		PrintInfo("Applying migrations to %s/%s", cfg.DBHost, cfg.DBName)
		if err := database.RunMigrations(ctx, dsn); err != nil {
			return err
		}
		fallthrough
	case "version":
		version, err := database.MigrationVersion(ctx, dsn)
		if err != nil {
			return err
		}
		PrintSuccess("Schema at version %d", version)
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q: expected up or version", subcmd)
	}
}
