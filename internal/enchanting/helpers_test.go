package enchanting

import (
	"time"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/taxonomy"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func weaponItem(maxEnchantments int) *domain.ItemInstance {
	t := &domain.ItemTemplate{
		TemplateKey:     "steel_axe",
		Name:            "steel axe",
		ItemType:        int(taxonomy.ItemTypeWeapon),
		Category:        "weapon.blunt.axe",
		BaseDamageMin:   6,
		BaseDamageMax:   11,
		AttackSpeed:     1.0,
		MaxDurability:   100,
		MaxEnchantments: maxEnchantments,
		Enchantable:     true,
	}
	item := domain.NewItemInstance(t, domain.OwnedByCharacter(7), testNow)
	item.ID = 1
	return item
}

func armorItem(maxEnchantments int) *domain.ItemInstance {
	t := &domain.ItemTemplate{
		TemplateKey:     "chain_hauberk",
		Name:            "chain hauberk",
		ItemType:        int(taxonomy.ItemTypeArmor),
		Category:        "armor.body.chest",
		ArmorClass:      8,
		MaxDurability:   100,
		MaxEnchantments: maxEnchantments,
		Enchantable:     true,
	}
	item := domain.NewItemInstance(t, domain.OwnedByCharacter(7), testNow)
	item.ID = 2
	return item
}

func enchanter(level int) domain.Character {
	return domain.Character{CharacterID: 7, DisplayName: "Morwen", Skills: map[string]int{"enchanting": level}}
}
