package taxonomy

// DamageType identifies a kind of damage for weapons, resistances and spells.
type DamageType string

const (
	DamagePhysical    DamageType = "physical"
	DamageSlashing    DamageType = "slashing"
	DamagePiercing    DamageType = "piercing"
	DamageBludgeoning DamageType = "bludgeoning"
	DamageFire        DamageType = "fire"
	DamageCold        DamageType = "cold"
	DamageLightning   DamageType = "lightning"
	DamagePoison      DamageType = "poison"
	DamageAcid        DamageType = "acid"
	DamageLight       DamageType = "light"
	DamageNegative    DamageType = "negative"
	DamageHoly        DamageType = "holy"
	DamageEnergy      DamageType = "energy"
	DamageAir         DamageType = "air"
	DamageEarth       DamageType = "earth"
	DamageWater       DamageType = "water"
	DamagePsychic     DamageType = "psychic"
	DamageSonic       DamageType = "sonic"
)

var damageTypes = setOf(
	DamagePhysical, DamageSlashing, DamagePiercing, DamageBludgeoning, DamageFire, DamageCold,
	DamageLightning, DamagePoison, DamageAcid, DamageLight, DamageNegative, DamageHoly,
	DamageEnergy, DamageAir, DamageEarth, DamageWater, DamagePsychic, DamageSonic,
)

// ParseDamageType returns the damage type for token, or DamagePhysical and false.
func ParseDamageType(token string) (DamageType, bool) {
	dt, ok := parseToken(damageTypes, token)
	if !ok {
		return DamagePhysical, false
	}
	return dt, true
}

// DamageTypes lists every damage type.
func DamageTypes() []DamageType {
	return []DamageType{
		DamagePhysical, DamageSlashing, DamagePiercing, DamageBludgeoning, DamageFire, DamageCold,
		DamageLightning, DamagePoison, DamageAcid, DamageLight, DamageNegative, DamageHoly,
		DamageEnergy, DamageAir, DamageEarth, DamageWater, DamagePsychic, DamageSonic,
	}
}
