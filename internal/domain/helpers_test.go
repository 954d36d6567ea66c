package domain

import (
	"time"

	"github.com/osse101/itemforge/internal/taxonomy"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func swordTemplate() *ItemTemplate {
	return &ItemTemplate{
		ID:              1,
		TemplateKey:     "iron_longsword",
		Name:            "iron longsword",
		ItemType:        int(taxonomy.ItemTypeWeapon),
		Category:        "weapon.blade.sword",
		Material:        string(taxonomy.MaterialIron),
		QualityTier:     string(taxonomy.QualityCommon),
		Weight:          6,
		WeaponType:      intPtr(int(taxonomy.WeaponLongSword)),
		BaseDamageMin:   5,
		BaseDamageMax:   10,
		AttackSpeed:     1.2,
		SocketCount:     1,
		SocketTypes:     []string{"gem"},
		MaxDurability:   100,
		MaxEnchantments: 1,
		Enchantable:     true,
		EquipmentStats:  StatBag{"strength": 4.0, "label": "keen"},
		WearFlags:       []string{"wield"},
		ItemFlags:       []string{"glow"},
		ItemFlags2:      []string{"unique"},
	}
}

func breastplateTemplate() *ItemTemplate {
	return &ItemTemplate{
		ID:              2,
		TemplateKey:     "steel_breastplate",
		Name:            "steel breastplate",
		ItemType:        int(taxonomy.ItemTypeArmor),
		Category:        "armor.body.chest",
		Material:        string(taxonomy.MaterialSteel),
		Weight:          20,
		ArmorClass:      11,
		DamageReduction: map[string]int{"slashing": 3},
		SocketCount:     2,
		SocketTypes:     []string{"gem", "rune"},
		MaxDurability:   100,
		MaxEnchantments: 2,
		Enchantable:     true,
	}
}

func gemTemplate(stats StatBag) *ItemTemplate {
	return &ItemTemplate{
		ID:             3,
		TemplateKey:    "ruby_common",
		Name:           "ruby",
		ItemType:       int(taxonomy.ItemTypeSocketGem),
		Category:       "gem.ruby",
		Subtype:        "ruby",
		Weight:         0.1,
		MaxDurability:  100,
		EquipmentStats: stats,
	}
}

func newItem(t *ItemTemplate, id int64) *ItemInstance {
	item := NewItemInstance(t, OwnedByCharacter(1), testNow)
	item.ID = id
	return item
}

type skilled map[string]int

func (s skilled) ID() int64                   { return 1 }
func (s skilled) Name() string                { return "Tester" }
func (s skilled) SkillLevel(skill string) int { return s[skill] }
