package forge

import (
	"time"

	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/event"
)

func newSpawnedEvent(item *domain.ItemInstance, at time.Time) event.Event {
	return event.New(domain.EventTypeItemSpawned, domain.ItemSpawnedPayload{
		ItemID:      item.ID,
		TemplateKey: item.TemplateKey,
		OwnerKind:   item.Owner.Kind(),
		OwnerID:     item.Owner.ID(),
		Timestamp:   at.Unix(),
	})
}

func newSocketedEvent(host *domain.ItemInstance, occupantID int64, index int, at time.Time) event.Event {
	payload := domain.ItemSocketedPayload{
		ItemID:      host.ID,
		OccupantID:  occupantID,
		SocketIndex: index,
		Timestamp:   at.Unix(),
	}
	if gem := host.Sockets[index].GemType; gem != nil {
		payload.GemType = *gem
	}
	return event.New(domain.EventTypeItemSocketed, payload)
}

func newUnsocketedEvent(hostID, occupantID int64, index int, destroyed bool, at time.Time) event.Event {
	return event.New(domain.EventTypeItemUnsocketed, domain.ItemUnsocketedPayload{
		ItemID:      hostID,
		OccupantID:  occupantID,
		SocketIndex: index,
		Destroyed:   destroyed,
		Timestamp:   at.Unix(),
	})
}

func newEnchantedEvent(itemID int64, e domain.Enchantment) event.Event {
	payload := domain.ItemEnchantedPayload{
		ItemID:        itemID,
		EnchantmentID: e.ID,
		Name:          e.Name,
		Timestamp:     e.AppliedAt.Unix(),
	}
	if e.AppliedBy != nil {
		payload.AppliedBy = *e.AppliedBy
	}
	return event.New(domain.EventTypeItemEnchanted, payload)
}

func newDamagedEvent(item *domain.ItemInstance, amount int, broken bool, at time.Time) event.Event {
	return event.New(domain.EventTypeItemDamaged, domain.ItemDamagedPayload{
		ItemID:     item.ID,
		Amount:     amount,
		Durability: item.Durability(),
		Condition:  item.Condition,
		Broken:     broken,
		Timestamp:  at.Unix(),
	})
}

func newBrokenEvent(item *domain.ItemInstance, at time.Time) event.Event {
	return event.New(domain.EventTypeItemBroken, domain.ItemBrokenPayload{
		ItemID:      item.ID,
		TemplateKey: item.TemplateKey,
		OwnerKind:   item.Owner.Kind(),
		OwnerID:     item.Owner.ID(),
		Timestamp:   at.Unix(),
	})
}

func newRepairedEvent(item *domain.ItemInstance, at time.Time) event.Event {
	return event.New(domain.EventTypeItemRepaired, domain.ItemRepairedPayload{
		ItemID:     item.ID,
		Durability: item.Durability(),
		Condition:  item.Condition,
		Timestamp:  at.Unix(),
	})
}

func newTransferredEvent(itemID int64, from, to domain.Owner, at time.Time) event.Event {
	return event.New(domain.EventTypeItemTransferred, domain.ItemTransferredPayload{
		ItemID:    itemID,
		FromKind:  from.Kind(),
		FromID:    from.ID(),
		ToKind:    to.Kind(),
		ToID:      to.ID(),
		Timestamp: at.Unix(),
	})
}

func newDisassembledEvent(item *domain.ItemInstance, actor domain.Actor, result *DisassemblyResult, at time.Time) event.Event {
	payload := domain.ItemDisassembledPayload{
		ItemID:          item.ID,
		TemplateKey:     item.TemplateKey,
		Yields:          result.Yields,
		CreatedItemIDs:  result.CreatedItemIDs,
		ReturnedItemIDs: result.ReturnedItemIDs,
		Timestamp:       at.Unix(),
	}
	if actor != nil {
		payload.ActorID = actor.ID()
	}
	return event.New(domain.EventTypeItemDisassembled, payload)
}
