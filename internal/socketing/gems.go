package socketing

import (
	"fmt"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/taxonomy"
)

// The gem bonus table is authoring data. It generates gem template
// equipment_stats; socketed items only ever read the slot snapshot.

type gemBonus struct {
	damageType  taxonomy.DamageType
	damageMin   int
	damageMax   int
	damageBonus int
	armorBonus  int
	reduction   map[taxonomy.DamageType]int
	stats       map[string]int
}

var gemBonuses = map[taxonomy.GemType]gemBonus{
	taxonomy.GemRuby: {
		damageType: taxonomy.DamageFire, damageMin: 3, damageMax: 7,
		reduction: map[taxonomy.DamageType]int{taxonomy.DamageFire: 5},
	},
	taxonomy.GemSapphire: {
		damageType: taxonomy.DamageCold, damageMin: 3, damageMax: 7,
		reduction: map[taxonomy.DamageType]int{taxonomy.DamageCold: 5},
	},
	taxonomy.GemEmerald: {
		damageType: taxonomy.DamagePoison, damageMin: 2, damageMax: 5,
		reduction: map[taxonomy.DamageType]int{taxonomy.DamagePoison: 5},
		stats:     map[string]int{"constitution": 2},
	},
	taxonomy.GemDiamond: {
		damageType: taxonomy.DamageHoly, damageMin: 4, damageMax: 8, armorBonus: 3,
		reduction: map[taxonomy.DamageType]int{taxonomy.DamageNegative: 8},
	},
	taxonomy.GemAmethyst: {
		damageType: taxonomy.DamageEnergy, damageMin: 3, damageMax: 6,
		stats: map[string]int{"mystical": 3},
	},
	taxonomy.GemTopaz: {
		damageType: taxonomy.DamageLightning, damageMin: 2, damageMax: 9,
		reduction: map[taxonomy.DamageType]int{taxonomy.DamageLightning: 5},
	},
	taxonomy.GemOnyx: {
		damageType: taxonomy.DamageNegative, damageMin: 3, damageMax: 7,
		reduction: map[taxonomy.DamageType]int{taxonomy.DamageHoly: 5},
		stats:     map[string]int{"will": 2},
	},
	taxonomy.GemPearl: {
		damageType: taxonomy.DamageWater, damageMin: 2, damageMax: 6,
		reduction: map[taxonomy.DamageType]int{taxonomy.DamageFire: 3, taxonomy.DamageLightning: 3},
	},
	taxonomy.GemCitrine: {
		damageType: taxonomy.DamageEarth, damageMin: 3, damageMax: 6, armorBonus: 2,
		stats: map[string]int{"strength": 2},
	},
	taxonomy.GemGarnet: {
		damageBonus: 4,
		stats:       map[string]int{"strength": 1, "constitution": 1},
	},
	taxonomy.GemOpal: {
		damageBonus: 2, armorBonus: 2,
		stats: map[string]int{"mystical": 2, "will": 1},
	},
	taxonomy.GemMoonstone: {
		damageType: taxonomy.DamagePsychic, damageMin: 2, damageMax: 6,
		stats: map[string]int{"cognition": 3, "mystical": 1},
	},
}

// Quality multipliers for generated gem templates. Tiers not listed use 1.0.
var gemQualityMultipliers = map[taxonomy.QualityTier]float64{
	taxonomy.QualityPoor:      0.5,
	taxonomy.QualityCommon:    1.0,
	taxonomy.QualityGood:      1.2,
	taxonomy.QualityUncommon:  1.5,
	taxonomy.QualityRare:      2.0,
	taxonomy.QualityEpic:      2.5,
	taxonomy.QualityLegendary: 3.0,
}

// Gem template defaults
const (
	GemTemplateWeight = 0.1
	GemBaseValue      = 50
)

// QualityMultiplier returns the gem scaling for tier.
func QualityMultiplier(tier taxonomy.QualityTier) float64 {
	if m, ok := gemQualityMultipliers[tier]; ok {
		return m
	}
	return 1.0
}

// GemBonuses returns the bonus set of gem scaled by qualityMult, each value
// truncated. Attribute bonuses are nested under "stats". Unknown gems get an
// empty bag.
func GemBonuses(gem taxonomy.GemType, qualityMult float64) domain.StatBag {
	b, ok := gemBonuses[gem]
	if !ok {
		return domain.StatBag{}
	}
	scale := func(v int) int { return int(float64(v) * qualityMult) }

	bag := domain.StatBag{}
	if b.damageType != "" {
		bag[domain.StatDamageType] = string(b.damageType)
		bag[domain.StatDamageMin] = scale(b.damageMin)
		bag[domain.StatDamageMax] = scale(b.damageMax)
	}
	if b.damageBonus != 0 {
		bag[domain.StatDamageBonus] = scale(b.damageBonus)
	}
	if b.armorBonus != 0 {
		bag[domain.StatArmorBonus] = scale(b.armorBonus)
	}
	if len(b.reduction) > 0 {
		reduction := make(map[string]int, len(b.reduction))
		for dt, amount := range b.reduction {
			reduction[string(dt)] = scale(amount)
		}
		bag[domain.StatDamageReduction] = reduction
	}
	if len(b.stats) > 0 {
		stats := make(map[string]int, len(b.stats))
		for stat, amount := range b.stats {
			stats[stat] = scale(amount)
		}
		bag[statsKey] = stats
	}
	return bag
}

const statsKey = "stats"

// GemTemplateStats builds the equipment_stats of a gem template for tier.
// Attribute bonuses are flattened to top-level keys so socket snapshots
// carry them the way socket totals read them.
func GemTemplateStats(gem taxonomy.GemType, tier taxonomy.QualityTier) domain.StatBag {
	bag := GemBonuses(gem, QualityMultiplier(tier))
	if stats, ok := bag[statsKey].(map[string]int); ok {
		delete(bag, statsKey)
		for stat, amount := range stats {
			bag[stat] = amount
		}
	}
	return bag
}

// GemTemplate authors a complete socketable gem template for tier.
func GemTemplate(gem taxonomy.GemType, tier taxonomy.QualityTier) domain.ItemTemplate {
	return domain.ItemTemplate{
		TemplateKey:       fmt.Sprintf("%s_%s", tier, gem),
		Name:              taxonomy.Label(tier) + " " + taxonomy.Label(gem),
		Description:       fmt.Sprintf("A %s %s, cut for socketing.", tier, gem),
		ItemType:          int(taxonomy.ItemTypeSocketGem),
		Category:          string(taxonomy.CategoryGem) + "." + string(gem),
		Subtype:           string(gem),
		Weight:            GemTemplateWeight,
		Value:             int(GemBaseValue * QualityMultiplier(tier)),
		QualityTier:       string(tier),
		EquipmentStats:    GemTemplateStats(gem, tier),
		MaxDurability:     domain.DefaultMaxDurability,
		AttackSpeed:       domain.DefaultAttackSpeed,
		ConsumableCharges: domain.DefaultConsumableCharges,
	}
}

// GemTemplates authors one template per gem type for tier, in gem order.
func GemTemplates(tier taxonomy.QualityTier) []domain.ItemTemplate {
	out := make([]domain.ItemTemplate, 0, len(gemBonuses))
	for _, gem := range taxonomy.GemTypes() {
		out = append(out, GemTemplate(gem, tier))
	}
	return out
}

// HasBonuses reports whether gem has an entry in the bonus table.
func HasBonuses(gem taxonomy.GemType) bool {
	_, ok := gemBonuses[gem]
	return ok
}
