package domain

import "time"

// EffectType classifies what an enchantment modifies.
type EffectType string

const (
	EffectDamage     EffectType = "damage"
	EffectArmor      EffectType = "armor"
	EffectResistance EffectType = "resistance"
	EffectSpeed      EffectType = "speed"
	EffectStats      EffectType = "stats"
	EffectSpecial    EffectType = "special"
)

// DamageRange is an inclusive [min, max] pair, encoded as a two-element JSON array.
type DamageRange [2]int

func (r DamageRange) Min() int { return r[0] }
func (r DamageRange) Max() int { return r[1] }

// EnchantmentEffect is the whitelisted payload an enchantment carries.
// Only fields relevant to the effect type are set.
type EnchantmentEffect struct {
	DamageType         string         `json:"damage_type,omitempty"`
	BonusDamage        *DamageRange   `json:"bonus_damage,omitempty"`
	FlatBonus          int            `json:"flat_bonus,omitempty"`
	ArmorBonus         int            `json:"armor_bonus,omitempty"`
	Reduction          int            `json:"reduction,omitempty"`
	StatBonuses        map[string]int `json:"stat_bonuses,omitempty"`
	Effect             string         `json:"effect,omitempty"`
	LifestealPercent   int            `json:"lifesteal_percent,omitempty"`
	CriticalChance     int            `json:"critical_chance,omitempty"`
	CriticalMultiplier float64        `json:"critical_multiplier,omitempty"`
	Multiplier         *float64       `json:"multiplier,omitempty"`
	MaxHealthBonus     int            `json:"max_health_bonus,omitempty"`
	EffectiveAgainst   []string       `json:"effective_against,omitempty"`
}

// SpeedMultiplier returns the attack speed multiplier, 1.0 when unset.
func (e EnchantmentEffect) SpeedMultiplier() float64 {
	if e.Multiplier == nil {
		return 1.0
	}
	return *e.Multiplier
}

// BonusRange returns the bonus damage range, [0, 0] when unset.
func (e EnchantmentEffect) BonusRange() DamageRange {
	if e.BonusDamage == nil {
		return DamageRange{}
	}
	return *e.BonusDamage
}

// Clone returns a copy that shares no slices or maps with e.
func (e EnchantmentEffect) Clone() EnchantmentEffect {
	out := e
	if e.BonusDamage != nil {
		r := *e.BonusDamage
		out.BonusDamage = &r
	}
	if e.Multiplier != nil {
		m := *e.Multiplier
		out.Multiplier = &m
	}
	if e.StatBonuses != nil {
		out.StatBonuses = make(map[string]int, len(e.StatBonuses))
		for k, v := range e.StatBonuses {
			out.StatBonuses[k] = v
		}
	}
	if e.EffectiveAgainst != nil {
		out.EffectiveAgainst = append([]string(nil), e.EffectiveAgainst...)
	}
	return out
}

// Enchantment is an effect record attached to an item instance.
type Enchantment struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      EffectType `json:"type"`
	AppliedBy *string    `json:"applied_by"`
	AppliedAt time.Time  `json:"applied_at"`
	EnchantmentEffect
}
