package domain

import (
	"fmt"

	"github.com/osse101/itemforge/internal/taxonomy"
)

// Outcome is the result of a rule-checked operation. A failed Outcome is an
// expected game condition and its Message is shown to the player as-is.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Succeeded builds a successful Outcome.
func Succeeded(msg string) Outcome { return Outcome{Success: true, Message: msg} }

// Failed builds a failed Outcome.
func Failed(msg string) Outcome { return Outcome{Success: false, Message: msg} }

// Player-facing outcome messages
const (
	MsgCannotEnchant      = "Item cannot be enchanted"
	MsgEnchantmentApplied = "Enchantment applied successfully"
	MsgUnknownEnchantment = "Unknown enchantment"
	MsgAlreadyEnchanted   = "This enchantment is already applied"
	MsgWeaponOnlyEnchant  = "This enchantment can only be applied to weapons"
	MsgArmorOnlyEnchant   = "This enchantment can only be applied to armor"
	MsgCanEnchant         = "Can enchant"
	MsgNoSockets          = "Item has no sockets"
	MsgNoEmptySockets     = "No empty sockets available"
	MsgSocketFilled       = "Socket already filled"
	MsgSocketEmpty        = "Socket is empty"
	MsgGemSocketed        = "Gem socketed successfully"
	MsgGemRemoved         = "Gem removed"
	MsgGemDestroyed       = "Gem destroyed"
	MsgCanSocket          = "Can socket"
	MsgCannotDisassemble  = "This item cannot be disassembled"
	MsgCanDisassemble     = "Can disassemble"
	MsgItemDisassembled   = "Item disassembled"
	MsgCannotSocketItself = "An item cannot be socketed into itself"
	MsgItemTransferred    = "Item transferred"
	MsgCannotContainSelf  = "An item cannot be placed inside itself"
	MsgNotAContainer      = "Target is not a container"
	MsgContainerFull      = "Container is full"
	MsgAlreadySocketed    = "Item is already socketed"
	fmtEnchantCapacity    = "Item can only hold %d enchantments"
	fmtSkillRequired      = "Requires %s level %d"
	fmtNoCompatibleSocket = "No compatible %s sockets available"
)

// EnchantCapacityMessage reports a full enchantment list.
func EnchantCapacityMessage(limit int) string { return fmt.Sprintf(fmtEnchantCapacity, limit) }

// SkillRequiredMessage reports an unmet skill requirement.
func SkillRequiredMessage(skill string, level int) string {
	return fmt.Sprintf(fmtSkillRequired, skill, level)
}

// NoCompatibleSocketMessage reports that no empty socket accepts the occupant kind.
func NoCompatibleSocketMessage(kind taxonomy.SocketType) string {
	return fmt.Sprintf(fmtNoCompatibleSocket, kind)
}
