package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveDamage(t *testing.T) {
	t.Parallel()

	t.Run("pristine common sword deals its base range", func(t *testing.T) {
		item := newItem(swordTemplate(), 10)

		minDmg, maxDmg, ok := item.EffectiveDamage()

		require.True(t, ok)
		assert.Equal(t, 5, minDmg)
		assert.Equal(t, 10, maxDmg)
	})

	t.Run("half condition truncates each bound", func(t *testing.T) {
		item := newItem(swordTemplate(), 10)
		item.Condition = 50

		minDmg, maxDmg, _ := item.EffectiveDamage()

		assert.Equal(t, 2, minDmg)
		assert.Equal(t, 5, maxDmg)
	})

	t.Run("quality and condition are truncated separately", func(t *testing.T) {
		item := newItem(swordTemplate(), 10)
		item.QualityModifier = 1.5 // 5 -> 7, 10 -> 15
		item.Condition = 80        // 7 -> 5, 15 -> 12

		minDmg, maxDmg, _ := item.EffectiveDamage()

		assert.Equal(t, 5, minDmg, "one combined multiply would give 6")
		assert.Equal(t, 12, maxDmg)
	})

	t.Run("socketed gem bonus is added to both bounds", func(t *testing.T) {
		item := newItem(swordTemplate(), 10)
		gem := newItem(gemTemplate(StatBag{"damage_bonus": 4.0}), 11)

		outcome, err := item.FillSocket(0, gem)
		require.NoError(t, err)
		require.True(t, outcome.Success)

		minDmg, maxDmg, _ := item.EffectiveDamage()
		assert.Equal(t, 9, minDmg)
		assert.Equal(t, 14, maxDmg)
	})

	t.Run("sharpness and damage enchantments add flat damage", func(t *testing.T) {
		item := newItem(swordTemplate(), 10)
		item.Sharpness = 2
		item.Enchantments = []Enchantment{
			{ID: "sharpness", Name: "Sharpness", Type: EffectDamage, EnchantmentEffect: EnchantmentEffect{FlatBonus: 5}},
			{ID: "protection", Name: "Protection", Type: EffectArmor, EnchantmentEffect: EnchantmentEffect{ArmorBonus: 5}},
		}

		minDmg, maxDmg, _ := item.EffectiveDamage()
		assert.Equal(t, 12, minDmg)
		assert.Equal(t, 17, maxDmg)
	})

	t.Run("bounds never drop below one", func(t *testing.T) {
		item := newItem(swordTemplate(), 10)
		item.Condition = 0

		minDmg, maxDmg, ok := item.EffectiveDamage()
		require.True(t, ok)
		assert.Equal(t, 1, minDmg)
		assert.Equal(t, 1, maxDmg)

		item.Sharpness = -20
		minDmg, maxDmg, _ = item.EffectiveDamage()
		assert.Equal(t, 1, minDmg)
		assert.Equal(t, 1, maxDmg)
	})

	t.Run("missing max uses min", func(t *testing.T) {
		tmpl := swordTemplate()
		tmpl.BaseDamageMax = 0
		item := newItem(tmpl, 10)

		minDmg, maxDmg, _ := item.EffectiveDamage()
		assert.Equal(t, 5, minDmg)
		assert.Equal(t, 5, maxDmg)
	})

	t.Run("no base range means no damage", func(t *testing.T) {
		item := newItem(breastplateTemplate(), 10)

		_, _, ok := item.EffectiveDamage()
		assert.False(t, ok)
	})
}

func TestDamageTypes(t *testing.T) {
	t.Parallel()

	item := newItem(swordTemplate(), 10)
	gem := newItem(gemTemplate(StatBag{"damage_type": "fire", "damage_min": 3.0, "damage_max": 7.0}), 11)
	_, err := item.FillSocket(0, gem)
	require.NoError(t, err)
	item.Enchantments = []Enchantment{{
		ID: "frost", Name: "Frost", Type: EffectDamage,
		EnchantmentEffect: EnchantmentEffect{DamageType: "cold", BonusDamage: &DamageRange{4, 9}},
	}}

	types := item.DamageTypes()

	require.Len(t, types, 3)
	assert.Equal(t, DamageComponent{Type: "slashing", Percentage: 100}, types[0])
	assert.Equal(t, DamageComponent{Type: "cold", Min: 4, Max: 9}, types[1])
	assert.Equal(t, DamageComponent{Type: "fire", Min: 3, Max: 7}, types[2])

	assert.Empty(t, newItem(breastplateTemplate(), 12).DamageTypes())
}

func TestAttackSpeed(t *testing.T) {
	t.Parallel()

	item := newItem(swordTemplate(), 10)
	assert.InDelta(t, 1.2, item.AttackSpeed(), 1e-9)

	item.Balance = 10
	assert.InDelta(t, 1.08, item.AttackSpeed(), 1e-9)

	swift := 0.9
	item.Enchantments = []Enchantment{{Type: EffectSpeed, EnchantmentEffect: EnchantmentEffect{Multiplier: &swift}}}
	assert.InDelta(t, 0.972, item.AttackSpeed(), 1e-9)

	assert.InDelta(t, 1.0, newItem(breastplateTemplate(), 11).AttackSpeed(), 1e-9)
}

func TestArmorClassAndReduction(t *testing.T) {
	t.Parallel()

	item := newItem(breastplateTemplate(), 20)
	item.QualityModifier = 1.5 // 11 -> 16
	item.Condition = 75        // 16 -> 12
	assert.Equal(t, 12, item.ArmorClass())

	gem := newItem(gemTemplate(StatBag{
		"armor_bonus":      3.0,
		"damage_reduction": map[string]any{"slashing": 2.0, "fire": 5.0},
	}), 21)
	_, err := item.FillSocket(0, gem)
	require.NoError(t, err)

	item.Enchantments = []Enchantment{
		{Type: EffectArmor, EnchantmentEffect: EnchantmentEffect{ArmorBonus: 5}},
		{Type: EffectResistance, EnchantmentEffect: EnchantmentEffect{DamageType: "fire", Reduction: 15, ArmorBonus: 3}},
	}

	assert.Equal(t, 20, item.ArmorClass(), "resistance armor bonus is not counted")
	assert.Equal(t, map[string]int{"slashing": 5, "fire": 20}, item.DamageReduction())
	assert.Equal(t, map[string]int{"slashing": 3}, item.Template().DamageReduction, "template table untouched")
}

func TestEffectiveStats(t *testing.T) {
	t.Parallel()

	t.Run("weapon", func(t *testing.T) {
		item := newItem(swordTemplate(), 10)
		item.Condition = 50

		stats := item.EffectiveStats()

		assert.Equal(t, 2, stats["strength"])
		assert.Equal(t, "keen", stats["label"])
		assert.Equal(t, DamageRange{2, 5}, stats[StatDamage])
		assert.InDelta(t, 1.2, stats[StatAttackSpeed], 1e-9)
		assert.NotContains(t, stats, StatArmorClass)
		assert.InDelta(t, 4.0, item.Template().EquipmentStats["strength"], 1e-9, "template stats untouched")
	})

	t.Run("armor", func(t *testing.T) {
		stats := newItem(breastplateTemplate(), 20).EffectiveStats()

		assert.Equal(t, 11, stats[StatArmorClass])
		assert.Equal(t, map[string]int{"slashing": 3}, stats[StatDamageReduction])
		assert.NotContains(t, stats, StatDamage)
	})
}

func TestWeights(t *testing.T) {
	t.Parallel()

	bag := &ItemTemplate{
		TemplateKey:     "bag_of_holding",
		Name:            "bag",
		ItemType:        15,
		Category:        "misc.bag",
		Material:        "silk",
		Weight:          10,
		WeightReduction: 0.5,
	}
	container := newItem(bag, 30)
	sword := newItem(swordTemplate(), 31)
	plate := newItem(breastplateTemplate(), 32)

	assert.InDelta(t, 0.5, container.EffectiveWeight(nil), 1e-9)
	assert.InDelta(t, 6.0, sword.EffectiveWeight(nil), 1e-9)
	assert.InDelta(t, 3.0, sword.EffectiveWeight(container), 1e-9)

	assert.True(t, container.IsContainer(), "container item type counts")
	assert.InDelta(t, 0.5+3.0+11.0, container.TotalWeight(nil, []*ItemInstance{sword, plate}), 1e-9)
	assert.InDelta(t, 6.0, sword.TotalWeight(nil, []*ItemInstance{plate}), 1e-9, "non-containers ignore contents")
}

func TestSheet(t *testing.T) {
	t.Parallel()

	tmpl := swordTemplate()
	tmpl.QualityTier = "legendary"
	item := newItem(tmpl, 10)

	sheet := item.Sheet(nil)

	assert.Equal(t, "Legendary iron longsword", sheet.DisplayName)
	assert.Equal(t, "legendary", sheet.Quality)
	require.NotNil(t, sheet.Damage)
	assert.Equal(t, DamageRange{5, 10}, *sheet.Damage)
	assert.Equal(t, 100, sheet.MaxDurability)
	assert.False(t, sheet.Broken)
	assert.Zero(t, sheet.ArmorClass)
}
