package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketRoundTrip(t *testing.T) {
	t.Parallel()

	item := newItem(swordTemplate(), 10)
	gemTmpl := gemTemplate(StatBag{"damage_bonus": 4.0, "damage_reduction": map[string]any{"fire": 5.0}})
	gem := newItem(gemTmpl, 11)

	outcome, err := item.FillSocket(0, gem)
	require.NoError(t, err)
	assert.Equal(t, Succeeded(MsgGemSocketed), outcome)

	slot := item.Sockets[0]
	assert.True(t, slot.Filled)
	require.NotNil(t, slot.ItemID)
	assert.Equal(t, int64(11), *slot.ItemID)
	require.NotNil(t, slot.GemType)
	assert.Equal(t, "ruby", *slot.GemType)
	assert.Equal(t, 4, slot.Bonuses.Int("damage_bonus"))
	assert.True(t, item.HoldsInSocket(11))
	assert.False(t, item.HoldsInSocket(12))

	t.Run("snapshot is frozen against template edits", func(t *testing.T) {
		gemTmpl.EquipmentStats["damage_bonus"] = 40.0
		gemTmpl.EquipmentStats["damage_reduction"].(map[string]any)["fire"] = 50.0

		assert.Equal(t, 4, item.Sockets[0].Bonuses.Int("damage_bonus"))
		assert.Equal(t, map[string]int{"fire": 5}, item.Sockets[0].Bonuses.IntMap("damage_reduction"))
	})

	t.Run("filling a filled socket fails", func(t *testing.T) {
		outcome, err := item.FillSocket(0, newItem(gemTmpl, 12))
		require.NoError(t, err)
		assert.Equal(t, Failed(MsgSocketFilled), outcome)
	})

	t.Run("clearing restores an empty slot and returns the occupant", func(t *testing.T) {
		id, outcome, err := item.ClearSocket(0, false)
		require.NoError(t, err)
		assert.Equal(t, Succeeded(MsgGemRemoved), outcome)
		require.NotNil(t, id)
		assert.Equal(t, int64(11), *id)

		slot := item.Sockets[0]
		assert.False(t, slot.Filled)
		assert.Nil(t, slot.ItemID)
		assert.Nil(t, slot.GemType)
		assert.Empty(t, slot.Bonuses)
		assert.Equal(t, 0, slot.Index)
		assert.False(t, item.HoldsInSocket(11))

		_, outcome, err = item.ClearSocket(0, false)
		require.NoError(t, err)
		assert.Equal(t, Failed(MsgSocketEmpty), outcome)
	})

	t.Run("destroying consumes the occupant", func(t *testing.T) {
		_, err := item.FillSocket(0, gem)
		require.NoError(t, err)

		id, outcome, err := item.ClearSocket(0, true)
		require.NoError(t, err)
		assert.Nil(t, id)
		assert.Equal(t, Succeeded(MsgGemDestroyed), outcome)
	})
}

func TestSocketIndexOutOfRange(t *testing.T) {
	t.Parallel()

	item := newItem(swordTemplate(), 10)
	gem := newItem(gemTemplate(nil), 11)

	for _, index := range []int{-1, 1, 99} {
		_, err := item.FillSocket(index, gem)
		assert.ErrorIs(t, err, ErrSocketIndexOutOfRange)

		_, _, err = item.ClearSocket(index, false)
		assert.ErrorIs(t, err, ErrSocketIndexOutOfRange)
	}
}

func TestInitializeSocketsWithoutTemplate(t *testing.T) {
	t.Parallel()

	item := &ItemInstance{}
	item.InitializeSockets()
	assert.NotNil(t, item.Sockets)
	assert.Empty(t, item.Sockets)
}

func TestStatBag(t *testing.T) {
	t.Parallel()

	bag := StatBag{
		"f":      7.9,
		"neg":    -2.5,
		"n":      3,
		"s":      "text",
		"nested": map[string]any{"fire": 2.0, "bad": "x"},
		"list":   []any{1.0, map[string]any{"a": 1.0}},
	}

	assert.Equal(t, 7, bag.Int("f"))
	assert.Equal(t, -2, bag.Int("neg"))
	assert.Equal(t, 3, bag.Int("n"))
	assert.Equal(t, 0, bag.Int("s"))
	assert.Equal(t, 0, bag.Int("missing"))
	assert.Equal(t, "text", bag.String("s"))
	assert.Equal(t, map[string]int{"fire": 2}, bag.IntMap("nested"))

	clone := bag.Clone()
	clone["nested"].(map[string]any)["fire"] = 9.0
	clone["list"].([]any)[1].(map[string]any)["a"] = 9.0
	assert.Equal(t, 2.0, bag["nested"].(map[string]any)["fire"])
	assert.Equal(t, 1.0, bag["list"].([]any)[1].(map[string]any)["a"])

	var nilBag StatBag
	assert.NotNil(t, nilBag.Clone())
}

func TestSocketBonusTotals(t *testing.T) {
	t.Parallel()

	plate := newItem(breastplateTemplate(), 20)
	assert.Equal(t, SocketBonuses{
		DamageTypes: []DamageComponent{},
		Resistances: map[string]int{},
		Stats:       map[string]int{},
	}, plate.SocketBonusTotals())

	diamond := gemTemplate(StatBag{
		"damage_type":      "holy",
		"damage_min":       4.0,
		"damage_max":       8.0,
		"armor_bonus":      3.0,
		"damage_reduction": map[string]any{"negative": 8.0},
	})
	runeTmpl := gemTemplate(StatBag{
		"armor_bonus":      2.0,
		"strength":         2.0,
		"damage_reduction": map[string]any{"negative": 2.0, "fire": 1.0},
	})
	_, err := plate.FillSocket(0, newItem(diamond, 21))
	require.NoError(t, err)
	_, err = plate.FillSocket(1, newItem(runeTmpl, 22))
	require.NoError(t, err)

	totals := plate.SocketBonusTotals()
	assert.Equal(t, 5, totals.ArmorBonus)
	assert.Equal(t, 0, totals.DamageBonus)
	assert.Equal(t, []DamageComponent{{Type: "holy", Min: 4, Max: 8}}, totals.DamageTypes)
	assert.Equal(t, map[string]int{"negative": 10, "fire": 1}, totals.Resistances)
	assert.Equal(t, map[string]int{"strength": 2}, totals.Stats)

	assert.Equal(t, 11+5, plate.ArmorClass())
	assert.Equal(t, map[string]int{"slashing": 3, "negative": 10, "fire": 1}, plate.DamageReduction())
}
