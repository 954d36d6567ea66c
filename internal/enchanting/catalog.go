package enchanting

import (
	"fmt"
	"maps"
	"slices"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/taxonomy"
	"github.com/osse101/itemforge/internal/utils"
	"github.com/osse101/itemforge/internal/validation"
)

// Material is one reagent consumed by an enchantment.
type Material struct {
	Type     string `json:"type" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

// Entry is a catalog definition of an enchantment.
type Entry struct {
	Name string            `json:"name" validate:"required"`
	Type domain.EffectType `json:"type" validate:"required,effect_type"`
	domain.EnchantmentEffect
	SkillRequired string     `json:"skill_required" validate:"required"`
	SkillLevel    int        `json:"skill_level" validate:"gte=0"`
	Materials     []Material `json:"materials" validate:"dive"`
}

// Catalog holds the weapon and armor enchantment tables. It is read-only
// once built and safe to share.
type Catalog struct {
	Version string           `json:"version"`
	Weapon  map[string]Entry `json:"weapon" validate:"dive"`
	Armor   map[string]Entry `json:"armor" validate:"dive"`
}

// LoadCatalog reads a catalog file, checking it against the embedded schema
// and the struct rules.
func LoadCatalog(path string, schemas validation.SchemaValidator) (*Catalog, error) {
	var c Catalog
	raw, err := utils.LoadJSON(path, &c)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateBytes(raw, validation.SchemaEnchantments); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidContent, path, err)
	}
	if err := validation.Struct(c); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidContent, path, err)
	}
	return &c, nil
}

// Lookup finds key in the weapon or armor table.
func (c *Catalog) Lookup(key string, weapon bool) (Entry, bool) {
	table := c.Armor
	if weapon {
		table = c.Weapon
	}
	e, ok := table[key]
	return e, ok
}

// Keys lists the keys of one table in sorted order.
func (c *Catalog) Keys(weapon bool) []string {
	table := c.Armor
	if weapon {
		table = c.Weapon
	}
	return slices.Sorted(maps.Keys(table))
}

func rangeOf(lo, hi int) *domain.DamageRange {
	return &domain.DamageRange{lo, hi}
}

func floatOf(v float64) *float64 { return &v }

const skillEnchanting = "enchanting"

// DefaultCatalog returns the built-in enchantment tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Version: CatalogVersion,
		Weapon: map[string]Entry{
			"flaming": {
				Name: "Flaming",
				Type: domain.EffectDamage,
				EnchantmentEffect: domain.EnchantmentEffect{
					DamageType:  string(taxonomy.DamageFire),
					BonusDamage: rangeOf(5, 10),
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    10,
				Materials: []Material{
					{Type: "essence.fire", Quantity: 5},
					{Type: "gem.ruby", Quantity: 1},
				},
			},
			"frost": {
				Name: "Frost",
				Type: domain.EffectDamage,
				EnchantmentEffect: domain.EnchantmentEffect{
					DamageType:  string(taxonomy.DamageCold),
					BonusDamage: rangeOf(4, 9),
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    10,
				Materials: []Material{
					{Type: "essence.cold", Quantity: 5},
					{Type: "gem.sapphire", Quantity: 1},
				},
			},
			"shocking": {
				Name: "Shocking",
				Type: domain.EffectDamage,
				EnchantmentEffect: domain.EnchantmentEffect{
					DamageType:  string(taxonomy.DamageLightning),
					BonusDamage: rangeOf(3, 12),
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    12,
				Materials: []Material{
					{Type: "essence.lightning", Quantity: 5},
					{Type: "gem.topaz", Quantity: 1},
				},
			},
			"vampiric": {
				Name: "Vampiric",
				Type: domain.EffectSpecial,
				EnchantmentEffect: domain.EnchantmentEffect{
					Effect:           "lifesteal",
					LifestealPercent: 10,
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    15,
				Materials: []Material{
					{Type: "essence.blood", Quantity: 10},
					{Type: "gem.garnet", Quantity: 2},
				},
			},
			"holy": {
				Name: "Holy",
				Type: domain.EffectDamage,
				EnchantmentEffect: domain.EnchantmentEffect{
					DamageType:       string(taxonomy.DamageHoly),
					BonusDamage:      rangeOf(6, 12),
					EffectiveAgainst: []string{"undead", "demon"},
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    18,
				Materials: []Material{
					{Type: "essence.holy", Quantity: 10},
					{Type: "gem.diamond", Quantity: 1},
				},
			},
			"vorpal": {
				Name: "Vorpal",
				Type: domain.EffectSpecial,
				EnchantmentEffect: domain.EnchantmentEffect{
					Effect:             "critical",
					CriticalChance:     10,
					CriticalMultiplier: 1.5,
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    20,
				Materials: []Material{
					{Type: "essence.death", Quantity: 15},
					{Type: "gem.diamond", Quantity: 2},
				},
			},
			"sharpness": {
				Name: "Sharpness",
				Type: domain.EffectDamage,
				EnchantmentEffect: domain.EnchantmentEffect{
					FlatBonus: 5,
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    5,
				Materials: []Material{
					{Type: "essence.arcane", Quantity: 3},
					{Type: "component.whetstone", Quantity: 1},
				},
			},
			"swiftness": {
				Name: "Swiftness",
				Type: domain.EffectSpeed,
				EnchantmentEffect: domain.EnchantmentEffect{
					Multiplier: floatOf(0.9),
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    12,
				Materials: []Material{
					{Type: "essence.air", Quantity: 8},
					{Type: "gem.opal", Quantity: 1},
				},
			},
		},
		Armor: map[string]Entry{
			"protection": {
				Name: "Protection",
				Type: domain.EffectArmor,
				EnchantmentEffect: domain.EnchantmentEffect{
					ArmorBonus: 5,
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    8,
				Materials: []Material{
					{Type: "essence.arcane", Quantity: 5},
					{Type: "gem.diamond", Quantity: 1},
				},
			},
			"fire_resistance": {
				Name: "Fire Resistance",
				Type: domain.EffectResistance,
				EnchantmentEffect: domain.EnchantmentEffect{
					DamageType: string(taxonomy.DamageFire),
					Reduction:  15,
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    10,
				Materials: []Material{
					{Type: "essence.fire", Quantity: 5},
					{Type: "gem.ruby", Quantity: 1},
				},
			},
			"cold_resistance": {
				Name: "Cold Resistance",
				Type: domain.EffectResistance,
				EnchantmentEffect: domain.EnchantmentEffect{
					DamageType: string(taxonomy.DamageCold),
					Reduction:  15,
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    10,
				Materials: []Material{
					{Type: "essence.cold", Quantity: 5},
					{Type: "gem.sapphire", Quantity: 1},
				},
			},
			"lightning_resistance": {
				Name: "Lightning Resistance",
				Type: domain.EffectResistance,
				EnchantmentEffect: domain.EnchantmentEffect{
					DamageType: string(taxonomy.DamageLightning),
					Reduction:  15,
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    10,
				Materials: []Material{
					{Type: "essence.lightning", Quantity: 5},
					{Type: "gem.topaz", Quantity: 1},
				},
			},
			"fortitude": {
				Name: "Fortitude",
				Type: domain.EffectStats,
				EnchantmentEffect: domain.EnchantmentEffect{
					StatBonuses: map[string]int{"constitution": 3, "strength": 2},
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    15,
				Materials: []Material{
					{Type: "essence.earth", Quantity: 10},
					{Type: "gem.citrine", Quantity: 2},
				},
			},
			"vitality": {
				Name: "Vitality",
				Type: domain.EffectStats,
				EnchantmentEffect: domain.EnchantmentEffect{
					StatBonuses:    map[string]int{"constitution": 5},
					MaxHealthBonus: 20,
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    12,
				Materials: []Material{
					{Type: "essence.life", Quantity: 8},
					{Type: "gem.emerald", Quantity: 1},
				},
			},
			"warding": {
				Name: "Warding",
				Type: domain.EffectResistance,
				EnchantmentEffect: domain.EnchantmentEffect{
					DamageType: string(taxonomy.DamageEnergy),
					Reduction:  10,
					ArmorBonus: 3,
				},
				SkillRequired: skillEnchanting,
				SkillLevel:    18,
				Materials: []Material{
					{Type: "essence.arcane", Quantity: 12},
					{Type: "gem.amethyst", Quantity: 2},
				},
			},
		},
	}
}
