package forge

// Operation names, used as the metrics label
const (
	OpSpawn       = "spawn"
	OpInspect     = "inspect"
	OpSocket      = "socket"
	OpUnsocket    = "unsocket"
	OpEnchant     = "enchant"
	OpDamage      = "damage"
	OpRepair      = "repair"
	OpTransfer    = "transfer"
	OpDisassemble = "disassemble"
)

// MaxContainerDepth bounds the walk up the container chain when checking
// that an item is not moved inside itself.
const MaxContainerDepth = 32

// MaxSocketLockAttempts bounds retries when a socket's occupant changes
// while Unsocket is acquiring locks.
const MaxSocketLockAttempts = 3

// Error Messages
const (
	ErrMsgFailedToBeginTx      = "failed to begin transaction"
	ErrMsgFailedToCommitTx     = "failed to commit transaction"
	ErrMsgFailedToLoadItem     = "failed to load item"
	ErrMsgFailedToBindTemplate = "failed to bind template"
	ErrMsgFailedToSaveItem     = "failed to save item"
	ErrMsgFailedToDeleteItem   = "failed to delete item"
	ErrMsgFailedToCreateItem   = "failed to create item"
	ErrMsgFailedToListContents = "failed to list container contents"
	ErrMsgSocketChanged        = "socket occupant kept changing"
)

// Log Messages
const (
	LogMsgItemSpawned          = "Item spawned"
	LogMsgItemSocketed         = "Item socketed"
	LogMsgItemUnsocketed       = "Item unsocketed"
	LogMsgItemEnchanted        = "Item enchanted"
	LogMsgItemDamaged          = "Item damaged"
	LogMsgItemBroken           = "Item broken"
	LogMsgItemRepaired         = "Item repaired"
	LogMsgItemTransferred      = "Item transferred"
	LogMsgItemDisassembled     = "Item disassembled"
	LogMsgOperationRejected    = "Item operation rejected"
	LogMsgEventPublishFailed   = "Failed to publish item event"
	LogMsgYieldTemplateMissing = "Disassembly yield template not found, skipping"
	LogMsgYieldItemMissing     = "Disassembly yield item not found, skipping"
	LogMsgOccupantMissing      = "Socketed item not found, socket emptied"
)
