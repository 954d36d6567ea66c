package taxonomy

// Material is what an item is made of. It scales weight and durability.
type Material string

// Metals
const (
	MaterialIron       Material = "iron"
	MaterialSteel      Material = "steel"
	MaterialBronze     Material = "bronze"
	MaterialCopper     Material = "copper"
	MaterialSilver     Material = "silver"
	MaterialGold       Material = "gold"
	MaterialMithril    Material = "mithril"
	MaterialAdamantine Material = "adamantine"
	MaterialDarksteel  Material = "darksteel"
	MaterialObsidian   Material = "obsidian"
)

// Woods
const (
	MaterialOak      Material = "oak"
	MaterialPine     Material = "pine"
	MaterialMaple    Material = "maple"
	MaterialAsh      Material = "ash"
	MaterialEbony    Material = "ebony"
	MaterialIronwood Material = "ironwood"
	MaterialYew      Material = "yew"
)

// Fabrics and hides
const (
	MaterialCotton     Material = "cotton"
	MaterialLinen      Material = "linen"
	MaterialWool       Material = "wool"
	MaterialSilk       Material = "silk"
	MaterialLeather    Material = "leather"
	MaterialHide       Material = "hide"
	MaterialScales     Material = "scales"
	MaterialDragonhide Material = "dragonhide"
)

// Magical
const (
	MaterialEthereal Material = "ethereal"
	MaterialCrystal  Material = "crystal"
	MaterialBone     Material = "bone"
	MaterialChitin   Material = "chitin"
)

type materialModifiers struct {
	weight     float64
	durability float64
}

var materials = map[Material]materialModifiers{
	MaterialIron:       {1.0, 1.0},
	MaterialSteel:      {1.1, 1.3},
	MaterialBronze:     {1.2, 0.9},
	MaterialCopper:     {0.9, 0.7},
	MaterialSilver:     {1.05, 0.8},
	MaterialGold:       {1.9, 0.6},
	MaterialMithril:    {0.5, 1.8},
	MaterialAdamantine: {0.8, 2.5},
	MaterialDarksteel:  {1.3, 2.0},
	MaterialObsidian:   {0.9, 1.1},

	MaterialOak:      {0.5, 0.8},
	MaterialPine:     {0.4, 0.6},
	MaterialMaple:    {0.5, 0.7},
	MaterialAsh:      {0.45, 0.75},
	MaterialEbony:    {0.7, 1.0},
	MaterialIronwood: {0.8, 1.2},
	MaterialYew:      {0.4, 0.7},

	MaterialCotton:     {0.1, 0.3},
	MaterialLinen:      {0.1, 0.4},
	MaterialWool:       {0.15, 0.4},
	MaterialSilk:       {0.05, 0.5},
	MaterialLeather:    {0.3, 0.6},
	MaterialHide:       {0.4, 0.7},
	MaterialScales:     {0.6, 1.1},
	MaterialDragonhide: {0.5, 1.5},

	MaterialEthereal: {0.01, 0.1},
	MaterialCrystal:  {0.8, 0.9},
	MaterialBone:     {0.3, 0.5},
	MaterialChitin:   {0.4, 0.8},
}

// ParseMaterial returns the material for token, or false if it is not a known material.
func ParseMaterial(token string) (Material, bool) {
	m := Material(token)
	if _, ok := materials[m]; !ok {
		return "", false
	}
	return m, true
}

// WeightModifier returns the weight multiplier for m, 1.0 for unknown materials.
func WeightModifier(m Material) float64 {
	if mod, ok := materials[m]; ok {
		return mod.weight
	}
	return 1.0
}

// DurabilityModifier returns the durability multiplier for m, 1.0 for unknown materials.
func DurabilityModifier(m Material) float64 {
	if mod, ok := materials[m]; ok {
		return mod.durability
	}
	return 1.0
}
