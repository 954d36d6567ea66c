package domain

import (
	"fmt"

	"github.com/osse101/itemforge/internal/taxonomy"
)

// SocketSlot is one socket on an item. A filled slot carries a frozen copy of
// the occupant's equipment stats taken when it was socketed; later changes to
// the occupant's template do not reach it.
type SocketSlot struct {
	Index   int                 `json:"index"`
	Type    taxonomy.SocketType `json:"type"`
	Filled  bool                `json:"filled"`
	ItemID  *int64              `json:"item_id"`
	GemType *string             `json:"gem_type"`
	Bonuses StatBag             `json:"bonuses"`
}

func emptySlot(index int, kind taxonomy.SocketType) SocketSlot {
	return SocketSlot{Index: index, Type: kind, Bonuses: StatBag{}}
}

// InitializeSockets builds one empty slot per template socket.
func (i *ItemInstance) InitializeSockets() {
	if i.template == nil || i.template.SocketCount == 0 {
		i.Sockets = []SocketSlot{}
		return
	}
	sockets := make([]SocketSlot, i.template.SocketCount)
	for n := range sockets {
		sockets[n] = emptySlot(n, i.template.SocketTypeAt(n))
	}
	i.Sockets = sockets
}

// FilledSockets returns the occupied slots in index order.
func (i *ItemInstance) FilledSockets() []SocketSlot {
	var filled []SocketSlot
	for _, s := range i.Sockets {
		if s.Filled {
			filled = append(filled, s)
		}
	}
	return filled
}

// HoldsInSocket reports whether some filled socket references itemID.
func (i *ItemInstance) HoldsInSocket(itemID int64) bool {
	for _, s := range i.Sockets {
		if s.Filled && s.ItemID != nil && *s.ItemID == itemID {
			return true
		}
	}
	return false
}

func (i *ItemInstance) checkSocketIndex(index int) error {
	if index < 0 || index >= len(i.Sockets) {
		return fmt.Errorf("%w: index %d, item %d has %d sockets", ErrSocketIndexOutOfRange, index, i.ID, len(i.Sockets))
	}
	return nil
}

// FillSocket places occupant into slot index and snapshots its equipment stats.
func (i *ItemInstance) FillSocket(index int, occupant *ItemInstance) (Outcome, error) {
	if err := i.checkSocketIndex(index); err != nil {
		return Outcome{}, err
	}
	slot := &i.Sockets[index]
	if slot.Filled {
		return Failed(MsgSocketFilled), nil
	}

	occupantID := occupant.ID
	slot.Filled = true
	slot.ItemID = &occupantID
	slot.GemType = nil
	slot.Bonuses = StatBag{}
	if t := occupant.Template(); t != nil {
		if t.Subtype != "" {
			subtype := t.Subtype
			slot.GemType = &subtype
		}
		slot.Bonuses = t.EquipmentStats.Clone()
	}
	return Succeeded(MsgGemSocketed), nil
}

// ClearSocket empties slot index. Unless destroy is set, the previous
// occupant's id is returned so the caller can put it back into the world.
func (i *ItemInstance) ClearSocket(index int, destroy bool) (*int64, Outcome, error) {
	if err := i.checkSocketIndex(index); err != nil {
		return nil, Outcome{}, err
	}
	slot := &i.Sockets[index]
	if !slot.Filled {
		return nil, Failed(MsgSocketEmpty), nil
	}

	occupantID := slot.ItemID
	*slot = emptySlot(slot.Index, slot.Type)

	if destroy {
		return nil, Succeeded(MsgGemDestroyed), nil
	}
	return occupantID, Succeeded(MsgGemRemoved), nil
}
