package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/osse101/itemforge/internal/bootstrap"
	"github.com/osse101/itemforge/internal/utils"
)

// DaemonCommand runs the scheduled maintenance jobs until interrupted
type DaemonCommand struct{}

func (c *DaemonCommand) Name() string {
	return "daemon"
}

func (c *DaemonCommand) Description() string {
	return "Periodically sync content and prune item history until interrupted"
}

func (c *DaemonCommand) Run(_ []string) error {
	return withApp(func(ctx context.Context, app *bootstrap.App) error {
		PrintInfo("Maintenance running, press Ctrl+C to stop")
		app.RunMaintenance(ctx)
		return nil
	})
}

// HistoryCommand prints the recorded events of an item
type HistoryCommand struct{}

func (c *HistoryCommand) Name() string {
	return "history"
}

func (c *HistoryCommand) Description() string {
	return "Print recorded events of an item: history <item_id> [limit]"
}

func (c *HistoryCommand) Run(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: history <item_id> [limit]")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q: %w", args[0], err)
	}
	limit := 0
	if len(args) == 2 {
		if limit, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid limit %q: %w", args[1], err)
		}
	}

	return withApp(func(ctx context.Context, app *bootstrap.App) error {
		entries, err := app.History.History(ctx, id, limit)
		if err != nil {
			return err
		}
		return utils.WriteJSON(os.Stdout, entries)
	})
}
