package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/osse101/itemforge/internal/bootstrap"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/forge"
	"github.com/osse101/itemforge/internal/utils"
)

// SpawnCommand creates an item instance from a template
type SpawnCommand struct{}

func (c *SpawnCommand) Name() string {
	return "spawn"
}

func (c *SpawnCommand) Description() string {
	return "Create an item: spawn <template_key> [<owner_kind> <owner_id>]"
}

func (c *SpawnCommand) Run(args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("usage: spawn <template_key> [<owner_kind> <owner_id>]")
	}

	owner := domain.Owner{}
	if len(args) == 3 {
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid owner id %q: %w", args[2], err)
		}
		if owner, err = domain.ParseOwner(args[1], id); err != nil {
			return err
		}
	}

	return withApp(func(ctx context.Context, app *bootstrap.App) error {
		item, err := app.Forge.Spawn(ctx, args[0], owner, forge.SpawnOptions{})
		if err != nil {
			return err
		}
		PrintSuccess("Spawned item %d (%s)", item.ID, item.DisplayName())
		return utils.WriteJSON(os.Stdout, item)
	})
}

// InspectCommand prints the derived stats of an item as JSON
type InspectCommand struct{}

func (c *InspectCommand) Name() string {
	return "inspect"
}

func (c *InspectCommand) Description() string {
	return "Print the effective stats of an item: inspect <item_id>"
}

func (c *InspectCommand) Run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: inspect <item_id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q: %w", args[0], err)
	}

	return withApp(func(ctx context.Context, app *bootstrap.App) error {
		sheet, err := app.Forge.Inspect(ctx, id)
		if err != nil {
			return err
		}
		return utils.WriteJSON(os.Stdout, sheet)
	})
}
