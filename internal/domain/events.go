package domain

// Event type constants published by the forge on the event bus.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.socketed")
const (
	// EventTypeItemSpawned is published when a new instance is created from a template
	EventTypeItemSpawned = "item.spawned"

	// EventTypeItemSocketed is published when an occupant is placed in a socket
	EventTypeItemSocketed = "item.socketed"

	// EventTypeItemUnsocketed is published when a socket is emptied
	EventTypeItemUnsocketed = "item.unsocketed"

	// EventTypeItemEnchanted is published when an enchantment is applied
	EventTypeItemEnchanted = "item.enchanted"

	// EventTypeItemDamaged is published whenever durability is lost
	EventTypeItemDamaged = "item.damaged"

	// EventTypeItemBroken is published once, when durability first reaches zero
	EventTypeItemBroken = "item.broken"

	// EventTypeItemRepaired is published after a repair
	EventTypeItemRepaired = "item.repaired"

	// EventTypeItemTransferred is published when an item changes owner
	EventTypeItemTransferred = "item.transferred"

	// EventTypeItemDisassembled is published when an item is broken down into yields
	EventTypeItemDisassembled = "item.disassembled"
)
