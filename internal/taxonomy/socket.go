package taxonomy

// SocketType is the kind of occupant a socket accepts.
type SocketType string

const (
	SocketGem     SocketType = "gem"
	SocketRune    SocketType = "rune"
	SocketEnchant SocketType = "enchant"
)

// DefaultSocketType is used for sockets the template does not type explicitly.
const DefaultSocketType = SocketGem

var socketTypes = setOf(SocketGem, SocketRune, SocketEnchant)

// ParseSocketType returns the socket type for token, or DefaultSocketType and false.
func ParseSocketType(token string) (SocketType, bool) {
	st, ok := parseToken(socketTypes, token)
	if !ok {
		return DefaultSocketType, false
	}
	return st, true
}

// GemType is the gemstone family of a socketable gem.
type GemType string

const (
	GemRuby      GemType = "ruby"      // fire
	GemSapphire  GemType = "sapphire"  // cold
	GemEmerald   GemType = "emerald"   // poison
	GemDiamond   GemType = "diamond"   // holy
	GemAmethyst  GemType = "amethyst"  // arcane
	GemTopaz     GemType = "topaz"     // lightning
	GemOnyx      GemType = "onyx"      // negative
	GemPearl     GemType = "pearl"     // water
	GemCitrine   GemType = "citrine"   // earth
	GemGarnet    GemType = "garnet"    // vampiric
	GemOpal      GemType = "opal"      // multi-element
	GemMoonstone GemType = "moonstone" // psychic
)

var gemTypes = []GemType{
	GemRuby, GemSapphire, GemEmerald, GemDiamond, GemAmethyst, GemTopaz,
	GemOnyx, GemPearl, GemCitrine, GemGarnet, GemOpal, GemMoonstone,
}

// ParseGemType returns the gem type for token, or false if unknown.
func ParseGemType(token string) (GemType, bool) {
	for _, g := range gemTypes {
		if string(g) == token {
			return g, true
		}
	}
	return "", false
}

// GemTypes lists every gem type in declaration order.
func GemTypes() []GemType {
	out := make([]GemType, len(gemTypes))
	copy(out, gemTypes)
	return out
}
