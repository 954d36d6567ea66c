package taxonomy

// WeaponType is the weapon class stored on weapon templates.
type WeaponType int

const (
	WeaponShortSword WeaponType = iota
	WeaponDagger
	WeaponSpear
	WeaponMace
	WeaponAxe
	WeaponFlail
	WeaponWhip
	WeaponPolearm
	WeaponBow
	WeaponCrossbow
	WeaponStaff
	WeaponLongSword
	WeaponFistWeapon
	WeaponArrow
)

var weaponNames = map[WeaponType]string{
	WeaponShortSword: "short_sword",
	WeaponDagger:     "dagger",
	WeaponSpear:      "spear",
	WeaponMace:       "mace",
	WeaponAxe:        "axe",
	WeaponFlail:      "flail",
	WeaponWhip:       "whip",
	WeaponPolearm:    "polearm",
	WeaponBow:        "bow",
	WeaponCrossbow:   "crossbow",
	WeaponStaff:      "staff",
	WeaponLongSword:  "long_sword",
	WeaponFistWeapon: "fist_weapon",
	WeaponArrow:      "arrow",
}

var weaponDamageTypes = map[WeaponType]DamageType{
	WeaponShortSword: DamageSlashing,
	WeaponLongSword:  DamageSlashing,
	WeaponDagger:     DamagePiercing,
	WeaponSpear:      DamagePiercing,
	WeaponMace:       DamageBludgeoning,
	WeaponAxe:        DamageSlashing,
	WeaponFlail:      DamageBludgeoning,
	WeaponWhip:       DamageSlashing,
	WeaponPolearm:    DamagePiercing,
	WeaponBow:        DamagePiercing,
	WeaponCrossbow:   DamagePiercing,
	WeaponStaff:      DamageBludgeoning,
	WeaponFistWeapon: DamageBludgeoning,
	WeaponArrow:      DamagePiercing,
}

var weaponSpeeds = map[WeaponType]float64{
	WeaponDagger:     0.8,
	WeaponShortSword: 1.0,
	WeaponLongSword:  1.2,
	WeaponMace:       1.1,
	WeaponAxe:        1.3,
	WeaponFlail:      1.4,
	WeaponWhip:       0.9,
	WeaponSpear:      1.1,
	WeaponPolearm:    1.5,
	WeaponBow:        1.2,
	WeaponCrossbow:   1.6,
	WeaponStaff:      1.3,
	WeaponFistWeapon: 0.7,
	WeaponArrow:      0.1, // ammunition, never wielded
}

// ParseWeaponType converts a stored integer into a WeaponType.
func ParseWeaponType(v int) (WeaponType, bool) {
	w := WeaponType(v)
	if _, ok := weaponNames[w]; !ok {
		return 0, false
	}
	return w, true
}

// String returns the snake_case token for the weapon type.
func (w WeaponType) String() string {
	if name, ok := weaponNames[w]; ok {
		return name
	}
	return "unknown"
}

// BaseDamageType returns the primary damage type dealt by a weapon class.
// Unknown classes deal physical damage.
func BaseDamageType(w WeaponType) DamageType {
	if dt, ok := weaponDamageTypes[w]; ok {
		return dt
	}
	return DamagePhysical
}

// BaseSpeed returns the attack speed multiplier for a weapon class, 1.0 when unknown.
func BaseSpeed(w WeaponType) float64 {
	if s, ok := weaponSpeeds[w]; ok {
		return s
	}
	return 1.0
}
