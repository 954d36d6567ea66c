package domain

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/osse101/itemforge/internal/taxonomy"
)

// Template defaults applied when a field is absent from content.
const (
	DefaultMaxDurability     = 100
	DefaultAttackSpeed       = 1.0
	DefaultConsumableCharges = 1
)

// ItemTemplate is the static definition every item instance is created from.
// Templates are authored as JSON content and never mutated at runtime.
type ItemTemplate struct {
	ID          int    `json:"-" db:"id"`
	TemplateKey string `json:"template_id" db:"template_key" validate:"required,max=100"`
	Name        string `json:"name" db:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty"`

	ItemType int    `json:"item_type" db:"item_type"`
	Category string `json:"category" db:"category" validate:"required,category"`
	Subtype  string `json:"subtype,omitempty"`

	Weight      float64 `json:"weight" validate:"gte=0"`
	Value       int     `json:"value" validate:"gte=0"`
	QualityTier string  `json:"quality_tier,omitempty" db:"quality_tier"`
	Material    string  `json:"material,omitempty" db:"material"`

	ItemFlags  []string `json:"item_flags,omitempty"`
	ItemFlags2 []string `json:"item_flags_2,omitempty"`
	WearFlags  []string `json:"wear_flags,omitempty"`

	SocketCount int      `json:"socket_count,omitempty" validate:"gte=0,lte=6"`
	SocketTypes []string `json:"socket_types,omitempty"`

	WeaponType    *int     `json:"weapon_type,omitempty"`
	WeaponFlags   []string `json:"weapon_flags,omitempty"`
	BaseDamageMin int      `json:"base_damage_min,omitempty" validate:"gte=0"`
	BaseDamageMax int      `json:"base_damage_max,omitempty" validate:"gte=0"`
	AttackSpeed   float64  `json:"attack_speed,omitempty" validate:"gte=0"`
	DamageTypes   []string `json:"damage_types,omitempty"`

	ArmorClass      int            `json:"armor_class,omitempty"`
	ArmorSlot       string         `json:"armor_slot,omitempty"`
	DamageReduction map[string]int `json:"damage_reduction,omitempty"`

	ContainerCapacity       int     `json:"container_capacity,omitempty" validate:"gte=0"`
	ContainerWeightCapacity float64 `json:"container_weight_capacity,omitempty" validate:"gte=0"`
	WeightReduction         float64 `json:"weight_reduction,omitempty" validate:"gte=0,lte=1"`

	ConsumableCharges int       `json:"consumable_charges,omitempty"`
	ConsumableEffects []StatBag `json:"consumable_effects,omitempty"`

	ComponentsRequired []StatBag        `json:"components_required,omitempty"`
	CraftingSkill      string           `json:"crafting_skill,omitempty"`
	CraftingDifficulty int              `json:"crafting_difficulty,omitempty"`
	Disassembly        *DisassemblyData `json:"disassembly_data,omitempty" validate:"omitempty"`

	EquipmentStats StatBag `json:"equipment_stats,omitempty"`
	Requirements   StatBag `json:"requirements,omitempty"`

	MaxDurability   int  `json:"max_durability" validate:"gte=0"`
	MaxEnchantments int  `json:"max_enchantments,omitempty" validate:"gte=0"`
	Enchantable     bool `json:"enchantable"`
}

// DisassemblyData describes what an item breaks down into.
type DisassemblyData struct {
	SkillRequired string       `json:"skill_required,omitempty"` // "skill:minLevel"
	Yields        []YieldEntry `json:"yields,omitempty" validate:"dive"`
}

// UnmarshalJSON applies content defaults for fields absent from the document.
func (t *ItemTemplate) UnmarshalJSON(data []byte) error {
	type plain ItemTemplate
	p := plain{
		ItemType:          int(taxonomy.DefaultItemType),
		QualityTier:       string(taxonomy.DefaultQualityTier),
		AttackSpeed:       DefaultAttackSpeed,
		ConsumableCharges: DefaultConsumableCharges,
		MaxDurability:     DefaultMaxDurability,
		Enchantable:       true,
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = ItemTemplate(p)
	return nil
}

// Type returns the parsed item type, falling back to trash for unknown values.
func (t *ItemTemplate) Type() taxonomy.ItemType {
	it, ok := taxonomy.ParseItemType(t.ItemType)
	if !ok {
		reportFallback(FallbackItemType, t.TemplateKey, t.ItemType)
	}
	return it
}

// Quality returns the parsed quality tier, falling back to common.
func (t *ItemTemplate) Quality() taxonomy.QualityTier {
	if t.QualityTier == "" {
		return taxonomy.DefaultQualityTier
	}
	q, ok := taxonomy.ParseQualityTier(t.QualityTier)
	if !ok {
		reportFallback(FallbackQualityTier, t.TemplateKey, t.QualityTier)
	}
	return q
}

// CategoryPath returns the template's dotted category.
func (t *ItemTemplate) CategoryPath() taxonomy.Category {
	return taxonomy.Category(t.Category)
}

// EffectiveWeight is the base weight scaled by the material weight multiplier.
// Missing or unknown materials leave the weight unchanged.
func (t *ItemTemplate) EffectiveWeight() float64 {
	if t.Material == "" {
		return t.Weight
	}
	m, ok := taxonomy.ParseMaterial(t.Material)
	if !ok {
		reportFallback(FallbackMaterial, t.TemplateKey, t.Material)
		return t.Weight
	}
	return t.Weight * taxonomy.WeightModifier(m)
}

// EffectiveDurability is the maximum durability scaled by the material
// durability multiplier and truncated.
func (t *ItemTemplate) EffectiveDurability() int {
	if t.Material == "" {
		return t.MaxDurability
	}
	m, ok := taxonomy.ParseMaterial(t.Material)
	if !ok {
		reportFallback(FallbackMaterial, t.TemplateKey, t.Material)
		return t.MaxDurability
	}
	return int(float64(t.MaxDurability) * taxonomy.DurabilityModifier(m))
}

// BaseDamageType returns the weapon class's primary damage type, or physical.
func (t *ItemTemplate) BaseDamageType() taxonomy.DamageType {
	if t.WeaponType == nil {
		return taxonomy.DamagePhysical
	}
	w, ok := taxonomy.ParseWeaponType(*t.WeaponType)
	if !ok {
		reportFallback(FallbackWeaponType, t.TemplateKey, *t.WeaponType)
		return taxonomy.DamagePhysical
	}
	return taxonomy.BaseDamageType(w)
}

// Speed returns the template attack speed, 1.0 when unset.
func (t *ItemTemplate) Speed() float64 {
	if t.AttackSpeed == 0 {
		return DefaultAttackSpeed
	}
	return t.AttackSpeed
}

// HasFlag checks a raw flag token against both extra-flag sets.
func (t *ItemTemplate) HasFlag(flag string) bool {
	return slices.Contains(t.ItemFlags, flag) || slices.Contains(t.ItemFlags2, flag)
}

func (t *ItemTemplate) HasItemFlag(flag taxonomy.ItemFlag) bool   { return t.HasFlag(string(flag)) }
func (t *ItemTemplate) HasItemFlag2(flag taxonomy.ItemFlag2) bool { return t.HasFlag(string(flag)) }

// CanWearAt checks a raw wear-slot token.
func (t *ItemTemplate) CanWearAt(slot string) bool {
	return slices.Contains(t.WearFlags, slot)
}

func (t *ItemTemplate) CanWear(slot taxonomy.WearFlag) bool { return t.CanWearAt(string(slot)) }

// SocketTypeAt returns the socket kind of slot i. Slots beyond the authored
// list, and unknown kinds, are gem sockets.
func (t *ItemTemplate) SocketTypeAt(i int) taxonomy.SocketType {
	if i < 0 || i >= len(t.SocketTypes) {
		return taxonomy.DefaultSocketType
	}
	st, ok := taxonomy.ParseSocketType(t.SocketTypes[i])
	if !ok {
		reportFallback(FallbackSocketType, t.TemplateKey, t.SocketTypes[i])
	}
	return st
}

// OccupantSocketKind is the socket kind this template needs when it is itself
// socketed into another item.
func (t *ItemTemplate) OccupantSocketKind() taxonomy.SocketType {
	switch taxonomy.ItemType(t.ItemType) {
	case taxonomy.ItemTypeSocketRune:
		return taxonomy.SocketRune
	case taxonomy.ItemTypeSocketGem:
		return taxonomy.SocketGem
	}
	return t.CategoryPath().SocketKind()
}

// HasDisassembly reports whether the template carries disassembly metadata.
func (t *ItemTemplate) HasDisassembly() bool {
	return t.Disassembly != nil && (t.Disassembly.SkillRequired != "" || len(t.Disassembly.Yields) > 0)
}

// HasDamageRange reports whether the template defines a base damage range.
func (t *ItemTemplate) HasDamageRange() bool {
	return t.BaseDamageMin != 0
}

func truncMul(v int, m float64) int {
	return int(math.Trunc(float64(v) * m))
}
