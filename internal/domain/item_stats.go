package domain

// Stat keys read from socket snapshots and written to effective stats.
const (
	StatDamageBonus     = "damage_bonus"
	StatArmorBonus      = "armor_bonus"
	StatDamageType      = "damage_type"
	StatDamageMin       = "damage_min"
	StatDamageMax       = "damage_max"
	StatDamageReduction = "damage_reduction"

	StatDamage      = "damage"
	StatAttackSpeed = "attack_speed"
	StatDamageTypes = "damage_types"
	StatArmorClass  = "armor_class"
)

// AttributeStats are the character attributes a socketed occupant can raise.
var AttributeStats = []string{"strength", "agility", "constitution", "cognition", "mystical", "will"}

// DamageComponent is one damage type an item deals. The base entry covers 100%
// of the base range; extra entries from sockets and enchantments carry their
// own range.
type DamageComponent struct {
	Type       string `json:"type"`
	Percentage int    `json:"percentage,omitempty"`
	Min        int    `json:"min,omitempty"`
	Max        int    `json:"max,omitempty"`
}

func (i *ItemInstance) conditionMultiplier() float64 {
	return float64(i.Condition) / 100.0
}

// EffectiveDamage returns the weapon damage range after quality, condition,
// sharpness, socket and enchantment modifiers. ok is false when the template
// has no base damage.
//
// Quality and condition are applied as two separate truncations.
func (i *ItemInstance) EffectiveDamage() (minDamage, maxDamage int, ok bool) {
	if i.template == nil || !i.template.HasDamageRange() {
		return 0, 0, false
	}
	minDamage = i.template.BaseDamageMin
	maxDamage = i.template.BaseDamageMax
	if maxDamage == 0 {
		maxDamage = minDamage
	}

	minDamage = truncMul(minDamage, i.QualityModifier)
	maxDamage = truncMul(maxDamage, i.QualityModifier)

	cm := i.conditionMultiplier()
	minDamage = truncMul(minDamage, cm)
	maxDamage = truncMul(maxDamage, cm)

	minDamage += i.Sharpness
	maxDamage += i.Sharpness

	socketBonus := i.SocketBonusTotals().DamageBonus
	minDamage += socketBonus
	maxDamage += socketBonus

	for _, e := range i.Enchantments {
		if e.Type == EffectDamage {
			minDamage += e.FlatBonus
			maxDamage += e.FlatBonus
		}
	}

	// min may exceed max after clamping; no reconciliation
	return max(1, minDamage), max(1, maxDamage), true
}

// DamageTypes lists the base damage type followed by extra typed damage from
// enchantments and sockets. Non-weapons deal none.
func (i *ItemInstance) DamageTypes() []DamageComponent {
	if !i.IsWeapon() {
		return nil
	}
	types := []DamageComponent{{Type: string(i.template.BaseDamageType()), Percentage: 100}}

	for _, e := range i.Enchantments {
		if e.Type == EffectDamage && e.DamageType != "" {
			r := e.BonusRange()
			types = append(types, DamageComponent{Type: e.DamageType, Min: r.Min(), Max: r.Max()})
		}
	}

	return append(types, i.SocketBonusTotals().DamageTypes...)
}

// AttackSpeed is the template speed reduced 1% per balance point and scaled by
// speed enchantments. No bounds are applied.
func (i *ItemInstance) AttackSpeed() float64 {
	if !i.IsWeapon() {
		return DefaultAttackSpeed
	}
	speed := i.template.Speed()
	if i.Balance != 0 {
		speed *= 1.0 - float64(i.Balance)*0.01
	}
	for _, e := range i.Enchantments {
		if e.Type == EffectSpeed {
			speed *= e.SpeedMultiplier()
		}
	}
	return speed
}

// ArmorClass applies quality then condition, each truncated, then adds socket
// and armor enchantment bonuses.
func (i *ItemInstance) ArmorClass() int {
	if i.template == nil {
		return 0
	}
	ac := truncMul(i.template.ArmorClass, i.QualityModifier)
	ac = truncMul(ac, i.conditionMultiplier())
	ac += i.SocketBonusTotals().ArmorBonus
	for _, e := range i.Enchantments {
		if e.Type == EffectArmor {
			ac += e.ArmorBonus
		}
	}
	return ac
}

// DamageReduction sums the template's reduction table with socket and
// resistance enchantment reductions per damage type.
func (i *ItemInstance) DamageReduction() map[string]int {
	reduction := map[string]int{}
	if i.template == nil {
		return reduction
	}
	for dt, amount := range i.template.DamageReduction {
		reduction[dt] = amount
	}
	for dt, amount := range i.SocketBonusTotals().Resistances {
		reduction[dt] += amount
	}
	for _, e := range i.Enchantments {
		if e.Type == EffectResistance && e.DamageType != "" {
			reduction[e.DamageType] += e.Reduction
		}
	}
	return reduction
}

// EffectiveStats scales every numeric equipment stat by condition and quality
// and merges in the computed weapon or armor values.
func (i *ItemInstance) EffectiveStats() StatBag {
	stats := StatBag{}
	if i.template == nil {
		return stats
	}
	cm := i.conditionMultiplier()
	for key, value := range i.template.EquipmentStats {
		if f, ok := numeric(value); ok {
			stats[key] = int(f * cm * i.QualityModifier)
			continue
		}
		stats[key] = cloneValue(value)
	}

	if i.IsWeapon() {
		if minDamage, maxDamage, ok := i.EffectiveDamage(); ok {
			stats[StatDamage] = DamageRange{minDamage, maxDamage}
		}
		stats[StatAttackSpeed] = i.AttackSpeed()
		stats[StatDamageTypes] = i.DamageTypes()
	}
	if i.IsArmor() {
		stats[StatArmorClass] = i.ArmorClass()
		stats[StatDamageReduction] = i.DamageReduction()
	}
	return stats
}

// EffectiveWeight is the template weight, reduced by the containing item's
// weight reduction when container is set.
func (i *ItemInstance) EffectiveWeight(container *ItemInstance) float64 {
	if i.template == nil {
		return 0
	}
	weight := i.template.EffectiveWeight()
	if container != nil && container.template != nil {
		weight *= 1.0 - container.template.WeightReduction
	}
	return weight
}

// TotalWeight adds the weight of contents when this item is a container.
func (i *ItemInstance) TotalWeight(container *ItemInstance, contents []*ItemInstance) float64 {
	weight := i.EffectiveWeight(container)
	if !i.IsContainer() {
		return weight
	}
	for _, c := range contents {
		weight += c.EffectiveWeight(i)
	}
	return weight
}

// StatSheet is a read-only snapshot of everything derived from an instance.
type StatSheet struct {
	ItemID          int64             `json:"item_id"`
	TemplateKey     string            `json:"template_id"`
	DisplayName     string            `json:"display_name"`
	Category        string            `json:"category"`
	Quality         string            `json:"quality_tier"`
	Condition       int               `json:"condition"`
	Durability      int               `json:"durability"`
	MaxDurability   int               `json:"max_durability"`
	Broken          bool              `json:"broken"`
	Weight          float64           `json:"weight"`
	Damage          *DamageRange      `json:"damage,omitempty"`
	AttackSpeed     float64           `json:"attack_speed,omitempty"`
	DamageTypes     []DamageComponent `json:"damage_types,omitempty"`
	ArmorClass      int               `json:"armor_class,omitempty"`
	DamageReduction map[string]int    `json:"damage_reduction,omitempty"`
	Stats           StatBag           `json:"stats"`
	Sockets         []SocketSlot      `json:"sockets"`
	Enchantments    []Enchantment     `json:"enchantments"`
	Owner           Owner             `json:"owner"`
}

// Sheet computes a StatSheet. container is the containing item, if any.
func (i *ItemInstance) Sheet(container *ItemInstance) StatSheet {
	sheet := StatSheet{
		ItemID:        i.ID,
		TemplateKey:   i.TemplateKey,
		DisplayName:   i.DisplayName(),
		Condition:     i.Condition,
		Durability:    i.Durability(),
		MaxDurability: i.MaxDurability(),
		Broken:        i.IsBroken(),
		Weight:        i.EffectiveWeight(container),
		Stats:         i.EffectiveStats(),
		Sockets:       i.Sockets,
		Enchantments:  i.Enchantments,
		Owner:         i.Owner,
	}
	if i.template != nil {
		sheet.Category = i.template.Category
		sheet.Quality = string(i.template.Quality())
	}
	if i.IsWeapon() {
		if minDamage, maxDamage, ok := i.EffectiveDamage(); ok {
			sheet.Damage = &DamageRange{minDamage, maxDamage}
		}
		sheet.AttackSpeed = i.AttackSpeed()
		sheet.DamageTypes = i.DamageTypes()
	}
	if i.IsArmor() {
		sheet.ArmorClass = i.ArmorClass()
		sheet.DamageReduction = i.DamageReduction()
	}
	return sheet
}
