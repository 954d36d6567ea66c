package main

import (
	"fmt"
	"io"

	"github.com/osse101/itemforge/internal/enchanting"
	"github.com/osse101/itemforge/internal/socketing"
	"github.com/osse101/itemforge/internal/taxonomy"
	"github.com/osse101/itemforge/internal/utils"
	"github.com/osse101/itemforge/internal/validation"
)

// GemsCommand prints authored gem templates for a quality tier
type GemsCommand struct {
	out io.Writer
}

func (c *GemsCommand) Name() string {
	return "gems"
}

func (c *GemsCommand) Description() string {
	return "Print gem templates for a quality tier: gems <tier>"
}

func (c *GemsCommand) Run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gems <tier>")
	}
	tier, ok := taxonomy.ParseQualityTier(args[0])
	if !ok {
		return fmt.Errorf("unknown quality tier %q", args[0])
	}
	return utils.WriteJSON(c.out, socketing.GemTemplates(tier))
}

// EnchantmentsCommand validates an enchantment catalog and lists its keys
type EnchantmentsCommand struct {
	out io.Writer
}

func (c *EnchantmentsCommand) Name() string {
	return "enchantments"
}

func (c *EnchantmentsCommand) Description() string {
	return "Validate and list an enchantment catalog: enchantments [path]"
}

func (c *EnchantmentsCommand) Run(args []string) error {
	catalog := enchanting.DefaultCatalog()
	if len(args) > 0 {
		loaded, err := enchanting.LoadCatalog(args[0], validation.NewSchemaValidator())
		if err != nil {
			return err
		}
		catalog = loaded
	}
	return utils.WriteJSON(c.out, map[string][]string{
		"weapon": catalog.Keys(true),
		"armor":  catalog.Keys(false),
	})
}
