package forge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/itemforge/internal/concurrency"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/event"
	"github.com/osse101/itemforge/internal/socketing"
)

func TestSpawn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sword, err := f.svc.Spawn(ctx, "iron_longsword", domain.OwnedByCharacter(7), SpawnOptions{CustomName: "Oathkeeper"})
	require.NoError(t, err)
	assert.Positive(t, sword.ID)

	stored := f.load(t, sword.ID)
	assert.Equal(t, "iron_longsword", stored.TemplateKey)
	assert.Equal(t, domain.OwnedByCharacter(7), stored.Owner)
	assert.Equal(t, "Oathkeeper", stored.DisplayName())
	assert.Equal(t, domain.MaxCondition, stored.Condition)
	require.NotNil(t, stored.CurrentDurability)
	assert.Equal(t, 100, *stored.CurrentDurability)
	require.Len(t, stored.Sockets, 1)
	assert.True(t, stored.CreatedAt.Equal(testNow))

	assert.Equal(t, []event.Type{domain.EventTypeItemSpawned}, f.events.types())
	payload := f.events.last().Payload.(domain.ItemSpawnedPayload)
	assert.Equal(t, sword.ID, payload.ItemID)
	assert.Equal(t, domain.OwnerCharacter, payload.OwnerKind)

	t.Run("unknown template", func(t *testing.T) {
		_, err := f.svc.Spawn(ctx, "mithril_crown", domain.Owner{}, SpawnOptions{})
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})

	t.Run("into a container", func(t *testing.T) {
		pack := f.spawn(t, "traveler_pack", domain.OwnedByCharacter(7))
		potion, err := f.svc.Spawn(ctx, "minor_healing_potion", domain.InContainer(pack.ID), SpawnOptions{})
		require.NoError(t, err)
		assert.Equal(t, domain.InContainer(pack.ID), f.load(t, potion.ID).Owner)
	})

	t.Run("into a non-container", func(t *testing.T) {
		before := f.repo.count()
		_, err := f.svc.Spawn(ctx, "minor_healing_potion", domain.InContainer(sword.ID), SpawnOptions{})
		assert.ErrorIs(t, err, domain.ErrContainerRejected)
		assert.Contains(t, err.Error(), domain.MsgNotAContainer)
		assert.Equal(t, before, f.repo.count())
	})

	t.Run("into a full container", func(t *testing.T) {
		f.addTemplate("traveler_pack", "coin_purse", func(tmpl *domain.ItemTemplate) {
			tmpl.ContainerCapacity = 1
		})
		purse := f.spawn(t, "coin_purse", domain.OwnedByCharacter(7))
		f.spawn(t, "cellar_key", domain.InContainer(purse.ID))

		_, err := f.svc.Spawn(ctx, "cellar_key", domain.InContainer(purse.ID), SpawnOptions{})
		assert.ErrorIs(t, err, domain.ErrContainerRejected)
		assert.Contains(t, err.Error(), domain.MsgContainerFull)
	})

	t.Run("into a missing container", func(t *testing.T) {
		_, err := f.svc.Spawn(ctx, "cellar_key", domain.InContainer(999), SpawnOptions{})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("write failure", func(t *testing.T) {
		f.repo.failWrite = errors.New("disk full")
		defer func() { f.repo.failWrite = nil }()
		before := f.repo.count()
		_, err := f.svc.Spawn(ctx, "iron_longsword", domain.Owner{}, SpawnOptions{})
		assert.Error(t, err)
		assert.Equal(t, before, f.repo.count())
	})
}

func TestInspect(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sword := f.spawn(t, "iron_longsword", domain.OwnedByCharacter(7))

	sheet, err := f.svc.Inspect(ctx, sword.ID)
	require.NoError(t, err)
	assert.Equal(t, sword.ID, sheet.ItemID)
	require.NotNil(t, sheet.Damage)
	assert.Equal(t, domain.DamageRange{5, 10}, *sheet.Damage)
	assert.False(t, sheet.Broken)

	t.Run("weight inside a container", func(t *testing.T) {
		pack := f.spawn(t, "traveler_pack", domain.OwnedByCharacter(7))
		outcome, err := f.svc.Transfer(ctx, sword.ID, domain.InContainer(pack.ID))
		require.NoError(t, err)
		require.True(t, outcome.Success)

		swordWeight := f.templates.byKey["iron_longsword"].EffectiveWeight()
		packWeight := f.templates.byKey["traveler_pack"].EffectiveWeight()

		inner, err := f.svc.Inspect(ctx, sword.ID)
		require.NoError(t, err)
		assert.InDelta(t, swordWeight*0.75, inner.Weight, 1e-9)

		outer, err := f.svc.Inspect(ctx, pack.ID)
		require.NoError(t, err)
		assert.InDelta(t, packWeight+swordWeight*0.75, outer.Weight, 1e-9)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := f.svc.Inspect(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestSocketAndUnsocket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sword := f.spawn(t, "iron_longsword", domain.OwnedByCharacter(7))
	ruby := f.spawn(t, "common_ruby", domain.OwnedByCharacter(7))

	placement, err := f.svc.Socket(ctx, sword.ID, ruby.ID)
	require.NoError(t, err)
	require.True(t, placement.Outcome.Success, placement.Outcome.Message)
	assert.Equal(t, 0, placement.Index)

	host := f.load(t, sword.ID)
	require.True(t, host.Sockets[0].Filled)
	assert.Equal(t, ruby.ID, *host.Sockets[0].ItemID)
	assert.Equal(t, domain.InContainer(sword.ID), f.load(t, ruby.ID).Owner)

	socketed := f.events.last().Payload.(domain.ItemSocketedPayload)
	assert.Equal(t, "ruby", socketed.GemType)

	sheet, err := f.svc.Inspect(ctx, sword.ID)
	require.NoError(t, err)
	require.Len(t, sheet.DamageTypes, 2)
	assert.Equal(t, "fire", sheet.DamageTypes[1].Type)

	t.Run("no empty socket", func(t *testing.T) {
		other := f.spawn(t, "common_ruby", domain.OwnedByCharacter(7))
		placement, err := f.svc.Socket(ctx, sword.ID, other.ID)
		require.NoError(t, err)
		assert.False(t, placement.Outcome.Success)
		assert.Equal(t, domain.MsgNoEmptySockets, placement.Outcome.Message)
		assert.Equal(t, -1, placement.Index)
		assert.Equal(t, domain.OwnedByCharacter(7), f.load(t, other.ID).Owner)
	})

	t.Run("already socketed elsewhere", func(t *testing.T) {
		other := f.spawn(t, "iron_longsword", domain.OwnedByCharacter(7))
		placement, err := f.svc.Socket(ctx, other.ID, ruby.ID)
		require.NoError(t, err)
		assert.False(t, placement.Outcome.Success)
		assert.Equal(t, domain.MsgAlreadySocketed, placement.Outcome.Message)
		assert.Equal(t, -1, placement.Index)

		assert.False(t, f.load(t, other.ID).Sockets[0].Filled)
		assert.Equal(t, domain.InContainer(sword.ID), f.load(t, ruby.ID).Owner)
	})

	t.Run("socketed item cannot be transferred", func(t *testing.T) {
		outcome, err := f.svc.Transfer(ctx, ruby.ID, domain.OwnedByCharacter(8))
		require.NoError(t, err)
		assert.False(t, outcome.Success)
		assert.Equal(t, domain.MsgAlreadySocketed, outcome.Message)

		assert.Equal(t, domain.InContainer(sword.ID), f.load(t, ruby.ID).Owner)
		assert.Equal(t, ruby.ID, *f.load(t, sword.ID).Sockets[0].ItemID)
	})

	t.Run("into itself", func(t *testing.T) {
		placement, err := f.svc.Socket(ctx, sword.ID, sword.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.MsgCannotSocketItself, placement.Outcome.Message)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := f.svc.Unsocket(ctx, sword.ID, 4, false, domain.Owner{})
		assert.ErrorIs(t, err, domain.ErrSocketIndexOutOfRange)
	})

	t.Run("unsocket returns to host owner", func(t *testing.T) {
		removal, err := f.svc.Unsocket(ctx, sword.ID, 0, false, domain.Owner{})
		require.NoError(t, err)
		require.True(t, removal.Outcome.Success)
		require.NotNil(t, removal.OccupantID)
		assert.Equal(t, ruby.ID, *removal.OccupantID)

		host := f.load(t, sword.ID)
		assert.False(t, host.Sockets[0].Filled)
		assert.Nil(t, host.Sockets[0].ItemID)
		assert.Equal(t, domain.OwnedByCharacter(7), f.load(t, ruby.ID).Owner)
	})

	t.Run("unsocket waits for the occupant lock", func(t *testing.T) {
		_, err := f.svc.Socket(ctx, sword.ID, ruby.ID)
		require.NoError(t, err)

		release := f.svc.lockManager.Lock(concurrency.ItemKey(ruby.ID))
		done := make(chan socketing.Removal)
		go func() {
			removal, err := f.svc.Unsocket(ctx, sword.ID, 0, false, domain.InRoom(5))
			assert.NoError(t, err)
			done <- removal
		}()

		select {
		case <-done:
			t.Fatal("unsocket finished while the occupant was locked")
		case <-time.After(50 * time.Millisecond):
		}
		release()

		removal := <-done
		require.True(t, removal.Outcome.Success)
		assert.Equal(t, domain.InRoom(5), f.load(t, ruby.ID).Owner)

		_, err = f.svc.Transfer(ctx, ruby.ID, domain.OwnedByCharacter(7))
		require.NoError(t, err)
	})

	t.Run("unsocket empty slot", func(t *testing.T) {
		removal, err := f.svc.Unsocket(ctx, sword.ID, 0, false, domain.Owner{})
		require.NoError(t, err)
		assert.Equal(t, domain.MsgSocketEmpty, removal.Outcome.Message)
	})

	t.Run("destroy deletes the occupant", func(t *testing.T) {
		_, err := f.svc.Socket(ctx, sword.ID, ruby.ID)
		require.NoError(t, err)

		removal, err := f.svc.Unsocket(ctx, sword.ID, 0, true, domain.Owner{})
		require.NoError(t, err)
		assert.Equal(t, domain.MsgGemDestroyed, removal.Outcome.Message)
		assert.Nil(t, removal.OccupantID)

		_, err = f.repo.GetInstance(ctx, ruby.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		unsocketed := f.events.last().Payload.(domain.ItemUnsocketedPayload)
		assert.True(t, unsocketed.Destroyed)
		assert.Equal(t, ruby.ID, unsocketed.OccupantID)
	})
}

func TestEnchant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sword := f.spawn(t, "iron_longsword", domain.OwnedByCharacter(7))

	outcome, err := f.svc.Enchant(ctx, sword.ID, "sharpness", smith(5))
	require.NoError(t, err)
	require.True(t, outcome.Success, outcome.Message)

	sheet, err := f.svc.Inspect(ctx, sword.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DamageRange{10, 15}, *sheet.Damage)

	enchanted := f.events.last().Payload.(domain.ItemEnchantedPayload)
	assert.Equal(t, "sharpness", enchanted.EnchantmentID)
	assert.Equal(t, "Morwen", enchanted.AppliedBy)

	outcome, err = f.svc.Enchant(ctx, sword.ID, "sharpness", smith(5))
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, "Item can only hold 1 enchantments", outcome.Message)
	assert.Len(t, f.load(t, sword.ID).Enchantments, 1)

	t.Run("armor enchantment on a weapon", func(t *testing.T) {
		axe := f.spawn(t, "steel_battleaxe", domain.OwnedByCharacter(7))
		outcome, err := f.svc.Enchant(ctx, axe.ID, "protection", smith(50))
		require.NoError(t, err)
		assert.Equal(t, domain.MsgArmorOnlyEnchant, outcome.Message)
	})
}

func TestDamageAndRepair(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sword := f.spawn(t, "iron_longsword", domain.OwnedByCharacter(7))

	broken, err := f.svc.Damage(ctx, sword.ID, 90)
	require.NoError(t, err)
	assert.False(t, broken)
	assert.Equal(t, 10, f.load(t, sword.ID).Condition)

	broken, err = f.svc.Damage(ctx, sword.ID, 15)
	require.NoError(t, err)
	assert.True(t, broken)
	stored := f.load(t, sword.ID)
	assert.Equal(t, 0, stored.Condition)
	assert.Equal(t, 0, stored.Durability())

	// broken is published once, on the transition
	_, err = f.svc.Damage(ctx, sword.ID, 5)
	require.NoError(t, err)
	brokenEvents := 0
	for _, typ := range f.events.types() {
		if typ == domain.EventTypeItemBroken {
			brokenEvents++
		}
	}
	assert.Equal(t, 1, brokenEvents)

	_, err = f.svc.Damage(ctx, sword.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	partial := 40
	require.NoError(t, f.svc.Repair(ctx, sword.ID, &partial))
	stored = f.load(t, sword.ID)
	assert.Equal(t, 40, stored.Condition)
	require.NotNil(t, stored.LastRepairedAt)
	assert.True(t, stored.LastRepairedAt.Equal(testNow))

	require.NoError(t, f.svc.Repair(ctx, sword.ID, nil))
	assert.Equal(t, domain.MaxCondition, f.load(t, sword.ID).Condition)
	assert.Equal(t, event.Type(domain.EventTypeItemRepaired), f.events.last().Type)
}

func TestTransfer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sword := f.spawn(t, "iron_longsword", domain.OwnedByCharacter(7))
	pack := f.spawn(t, "traveler_pack", domain.OwnedByCharacter(7))
	key := f.spawn(t, "cellar_key", domain.InRoom(3))

	tests := []struct {
		name    string
		itemID  int64
		owner   domain.Owner
		success bool
		message string
	}{
		{"to a room", sword.ID, domain.InRoom(3), true, domain.MsgItemTransferred},
		{"into a pack", key.ID, domain.InContainer(pack.ID), true, domain.MsgItemTransferred},
		{"into a non-container", key.ID, domain.InContainer(sword.ID), false, domain.MsgNotAContainer},
		{"into itself", pack.ID, domain.InContainer(pack.ID), false, domain.MsgCannotContainSelf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := f.svc.Transfer(ctx, tt.itemID, tt.owner)
			require.NoError(t, err)
			assert.Equal(t, tt.success, outcome.Success)
			assert.Equal(t, tt.message, outcome.Message)
			if tt.success {
				assert.Equal(t, tt.owner, f.load(t, tt.itemID).Owner)
			}
		})
	}

	t.Run("into a pack it contains", func(t *testing.T) {
		inner := f.spawn(t, "traveler_pack", domain.InContainer(pack.ID))
		outcome, err := f.svc.Transfer(ctx, pack.ID, domain.InContainer(inner.ID))
		require.NoError(t, err)
		assert.Equal(t, domain.MsgCannotContainSelf, outcome.Message)
	})

	t.Run("clears equipped slot", func(t *testing.T) {
		f.repo.mu.Lock()
		f.repo.items[sword.ID].EquippedSlot = "wield"
		f.repo.mu.Unlock()

		_, err := f.svc.Transfer(ctx, sword.ID, domain.OwnedByNPC(4))
		require.NoError(t, err)
		assert.Empty(t, f.load(t, sword.ID).EquippedSlot)

		moved := f.events.last().Payload.(domain.ItemTransferredPayload)
		assert.Equal(t, domain.OwnerRoom, moved.FromKind)
		assert.Equal(t, domain.OwnerNPC, moved.ToKind)
	})

	t.Run("missing container", func(t *testing.T) {
		_, err := f.svc.Transfer(ctx, sword.ID, domain.InContainer(999))
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestDisassemble(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("skill too low", func(t *testing.T) {
		sword := f.spawn(t, "iron_longsword", domain.OwnedByCharacter(7))
		result, err := f.svc.Disassemble(ctx, sword.ID, smith(9))
		require.NoError(t, err)
		assert.False(t, result.Outcome.Success)
		assert.Equal(t, "Requires smithing level 10", result.Outcome.Message)
		f.load(t, sword.ID)
	})

	t.Run("no disassembly data", func(t *testing.T) {
		pack := f.spawn(t, "traveler_pack", domain.OwnedByCharacter(7))
		result, err := f.svc.Disassemble(ctx, pack.ID, smith(50))
		require.NoError(t, err)
		assert.Equal(t, domain.MsgCannotDisassemble, result.Outcome.Message)
	})

	t.Run("container contents go to the actor", func(t *testing.T) {
		f.addTemplate("traveler_pack", "salvage_crate", func(tmpl *domain.ItemTemplate) {
			tmpl.Disassembly = &domain.DisassemblyData{
				Yields: []domain.YieldEntry{{Type: "leather_strip"}},
			}
		})
		crate := f.spawn(t, "salvage_crate", domain.InRoom(3))
		potion := f.spawn(t, "minor_healing_potion", domain.InContainer(crate.ID))
		key := f.spawn(t, "cellar_key", domain.InContainer(crate.ID))

		result, err := f.svc.Disassemble(ctx, crate.ID, smith(1))
		require.NoError(t, err)
		require.True(t, result.Outcome.Success, result.Outcome.Message)

		assert.Len(t, result.CreatedItemIDs, 1)
		assert.ElementsMatch(t, []int64{potion.ID, key.ID}, result.ReturnedItemIDs)
		assert.Equal(t, domain.OwnedByCharacter(7), f.load(t, potion.ID).Owner)
		assert.Equal(t, domain.OwnedByCharacter(7), f.load(t, key.ID).Owner)

		contents, err := f.repo.ListContents(ctx, crate.ID)
		require.NoError(t, err)
		assert.Empty(t, contents)
	})

	t.Run("yields and socketed gems", func(t *testing.T) {
		sword := f.spawn(t, "iron_longsword", domain.InRoom(3))
		ruby := f.spawn(t, "common_ruby", domain.OwnedByCharacter(7))
		_, err := f.svc.Socket(ctx, sword.ID, ruby.ID)
		require.NoError(t, err)

		result, err := f.svc.Disassemble(ctx, sword.ID, smith(10))
		require.NoError(t, err)
		require.True(t, result.Outcome.Success)

		// skill 10 caps the bonus at 50%: 2 ingots become 3, 1 strip stays 1
		require.Len(t, result.Yields, 3)
		assert.Equal(t, 3, result.Yields[0].Count())
		assert.Equal(t, 1, result.Yields[1].Count())
		assert.True(t, result.Yields[2].IsExistingItem())

		assert.Len(t, result.CreatedItemIDs, 4)
		assert.Equal(t, []int64{ruby.ID}, result.ReturnedItemIDs)
		for _, id := range result.CreatedItemIDs {
			assert.Equal(t, domain.OwnedByCharacter(7), f.load(t, id).Owner)
		}
		assert.Equal(t, domain.OwnedByCharacter(7), f.load(t, ruby.ID).Owner)

		_, err = f.repo.GetInstance(ctx, sword.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		payload := f.events.last().Payload.(domain.ItemDisassembledPayload)
		assert.Equal(t, int64(7), payload.ActorID)
		assert.Equal(t, "iron_longsword", payload.TemplateKey)
	})
}
