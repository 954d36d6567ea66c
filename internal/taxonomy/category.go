package taxonomy

import "strings"

// Category is a dotted category path such as "weapon.blade.sword".
type Category string

// Category roots.
const (
	CategoryWeapon     = "weapon"
	CategoryArmor      = "armor"
	CategoryAccessory  = "accessory"
	CategoryConsumable = "consumable"
	CategoryContainer  = "container"
	CategoryKey        = "key"
	CategoryGem        = "gem"
	CategoryRune       = "rune"
)

// Root returns the first segment of the path.
func (c Category) Root() string {
	root, _, _ := strings.Cut(string(c), ".")
	return root
}

func (c Category) under(root string) bool {
	return strings.HasPrefix(string(c), root+".")
}

func (c Category) IsWeapon() bool     { return c.under(CategoryWeapon) }
func (c Category) IsArmor() bool      { return c.under(CategoryArmor) }
func (c Category) IsConsumable() bool { return c.under(CategoryConsumable) }

// IsEquipment is true for weapons, armor and accessories.
func (c Category) IsEquipment() bool {
	return c.IsWeapon() || c.IsArmor() || c.under(CategoryAccessory)
}

// IsContainer matches only the bare "container" category.
func (c Category) IsContainer() bool { return string(c) == CategoryContainer }

func (c Category) IsKey() bool { return string(c) == CategoryKey }

// SocketKind derives the socket type an occupant of this category needs.
// Rune categories need rune sockets, everything else gem sockets.
func (c Category) SocketKind() SocketType {
	if c.Root() == CategoryRune {
		return SocketRune
	}
	return SocketGem
}
