package domain

// ItemSpawnedPayload is the event payload for item.spawned events
type ItemSpawnedPayload struct {
	ItemID      int64     `json:"item_id"`
	TemplateKey string    `json:"template_id"`
	OwnerKind   OwnerKind `json:"owner_kind,omitempty"`
	OwnerID     int64     `json:"owner_id,omitempty"`
	Timestamp   int64     `json:"timestamp"`
}

// ItemSocketedPayload is the event payload for item.socketed events
type ItemSocketedPayload struct {
	ItemID      int64  `json:"item_id"`
	OccupantID  int64  `json:"occupant_id"`
	SocketIndex int    `json:"socket_index"`
	GemType     string `json:"gem_type,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemUnsocketedPayload is the event payload for item.unsocketed events
type ItemUnsocketedPayload struct {
	ItemID      int64 `json:"item_id"`
	OccupantID  int64 `json:"occupant_id"`
	SocketIndex int   `json:"socket_index"`
	Destroyed   bool  `json:"destroyed"`
	Timestamp   int64 `json:"timestamp"`
}

// ItemEnchantedPayload is the event payload for item.enchanted events
type ItemEnchantedPayload struct {
	ItemID        int64  `json:"item_id"`
	EnchantmentID string `json:"enchantment_id"`
	Name          string `json:"name"`
	AppliedBy     string `json:"applied_by,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

// ItemDamagedPayload is the event payload for item.damaged events
type ItemDamagedPayload struct {
	ItemID     int64 `json:"item_id"`
	Amount     int   `json:"amount"`
	Durability int   `json:"durability"`
	Condition  int   `json:"condition"`
	Broken     bool  `json:"broken"`
	Timestamp  int64 `json:"timestamp"`
}

// ItemBrokenPayload is the event payload for item.broken events
type ItemBrokenPayload struct {
	ItemID      int64     `json:"item_id"`
	TemplateKey string    `json:"template_id"`
	OwnerKind   OwnerKind `json:"owner_kind,omitempty"`
	OwnerID     int64     `json:"owner_id,omitempty"`
	Timestamp   int64     `json:"timestamp"`
}

// ItemRepairedPayload is the event payload for item.repaired events
type ItemRepairedPayload struct {
	ItemID     int64 `json:"item_id"`
	Durability int   `json:"durability"`
	Condition  int   `json:"condition"`
	Timestamp  int64 `json:"timestamp"`
}

// ItemTransferredPayload is the event payload for item.transferred events
type ItemTransferredPayload struct {
	ItemID    int64     `json:"item_id"`
	FromKind  OwnerKind `json:"from_kind,omitempty"`
	FromID    int64     `json:"from_id,omitempty"`
	ToKind    OwnerKind `json:"to_kind,omitempty"`
	ToID      int64     `json:"to_id,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// ItemDisassembledPayload is the event payload for item.disassembled events
type ItemDisassembledPayload struct {
	ItemID          int64        `json:"item_id"`
	TemplateKey     string       `json:"template_id"`
	ActorID         int64        `json:"actor_id"`
	Yields          []YieldEntry `json:"yields"`
	CreatedItemIDs  []int64      `json:"created_item_ids"`
	ReturnedItemIDs []int64      `json:"returned_item_ids"`
	Timestamp       int64        `json:"timestamp"`
}
