package enchanting

// CatalogVersion is the catalog file format this build reads.
const CatalogVersion = "1.0"

// Power weights for the enchantment power heuristic
const (
	armorPowerWeight   = 2.0
	speedPowerWeight   = 50.0
	specialPowerWeight = 20.0
)
